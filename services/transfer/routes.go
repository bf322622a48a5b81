// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package transfer

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RegisterRoutes registers all transfer routes with the router group.
//
// Description:
//
//	Registers the /transfer/* endpoints with the given Gin router group
//	(typically /v1). The group should already have any required
//	middleware applied.
//
// Endpoints:
//
//	POST   /v1/transfer/sessions - Create a conversation session
//	DELETE /v1/transfer/sessions/:id - Drop a session
//	POST   /v1/transfer/sessions/:id/message - One slot-filling turn
//	GET    /v1/transfer/sessions/:id/summary - Collected slots snapshot
//	POST   /v1/transfer/sessions/:id/send - Execute the transfer
//	GET    /v1/transfer/tools - Tool schema discovery
//	GET    /v1/transfer/health - Liveness
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	grp := rg.Group("/transfer")

	grp.POST("/sessions", h.HandleCreateSession)
	grp.DELETE("/sessions/:id", h.HandleDeleteSession)
	grp.POST("/sessions/:id/message", h.HandleMessage)
	grp.GET("/sessions/:id/summary", h.HandleSummary)
	grp.POST("/sessions/:id/send", h.HandleSend)

	grp.GET("/tools", h.HandleListTools)
	grp.GET("/health", h.HandleHealth)
}

// NewRouter builds the service router with recovery and tracing
// middleware applied and all transfer routes registered under /v1.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("remitagent"))

	v1 := r.Group("/v1")
	RegisterRoutes(v1, h)
	return r
}

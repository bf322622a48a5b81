// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package transfer is the HTTP surface over the slot-filling engine:
// session lifecycle, per-turn messages, summary, execution, and tool
// schema discovery.
package transfer

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/corridorlabs/remitagent/services/transfer/collect"
	"github.com/corridorlabs/remitagent/services/transfer/state"
	"github.com/corridorlabs/remitagent/services/transfer/tools"
)

// ErrorResponse is the uniform error body for all transfer endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handlers carries the dependencies shared by the transfer endpoints.
//
// Thread Safety: Safe for concurrent use; per-session turn ordering is
// the client's responsibility.
type Handlers struct {
	collector *collect.Collector
	sessions  *state.SessionManager
	registry  *tools.Registry
	logger    *slog.Logger
}

// NewHandlers wires the transfer endpoints.
//
// Inputs:
//   - c: The collection engine. Must not be nil.
//   - sessions: The session registry. Must not be nil.
//   - registry: The tool registry served by the discovery endpoint.
//   - logger: Structured logger; nil falls back to slog.Default().
func NewHandlers(c *collect.Collector, sessions *state.SessionManager, registry *tools.Registry, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		collector: c,
		sessions:  sessions,
		registry:  registry,
		logger:    logger,
	}
}

// getOrCreateRequestID returns the inbound X-Request-ID or mints one.
func getOrCreateRequestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

// sessionStore resolves the :id path parameter to its store, writing the
// 404 response itself when the session is unknown.
func (h *Handlers) sessionStore(c *gin.Context) (state.Store, string, bool) {
	id := c.Param("id")
	st, ok := h.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "session not found: " + id,
			Code:  "SESSION_NOT_FOUND",
		})
		return nil, id, false
	}
	return st, id, true
}

// CreateSessionResponse is the body for POST /v1/transfer/sessions.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// HandleCreateSession handles POST /v1/transfer/sessions.
//
// Response:
//
//	201 Created: CreateSessionResponse
func (h *Handlers) HandleCreateSession(c *gin.Context) {
	id, _ := h.sessions.Create()
	h.logger.Info("session created",
		"request_id", getOrCreateRequestID(c),
		"session_id", id,
	)
	c.JSON(http.StatusCreated, CreateSessionResponse{SessionID: id})
}

// MessageRequest is the body for a conversation turn.
type MessageRequest struct {
	// Text is the user's raw utterance.
	Text string `json:"text" binding:"required"`
}

// MessageResponse carries the engine's conversational reply.
type MessageResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// HandleMessage handles POST /v1/transfer/sessions/:id/message.
//
// Description:
//
//	Runs one slot-filling turn: correction detection, extraction,
//	validation, merge, and reply composition.
//
// Response:
//
//	200 OK: MessageResponse
//	400 Bad Request: Missing text
//	404 Not Found: Unknown session
func (h *Handlers) HandleMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "text field is required: " + err.Error(),
			Code:  "INVALID_REQUEST",
		})
		return
	}

	st, id, ok := h.sessionStore(c)
	if !ok {
		return
	}

	reply := h.collector.HandleTurn(st, req.Text)
	h.logger.Debug("turn handled",
		"request_id", getOrCreateRequestID(c),
		"session_id", id,
	)
	c.JSON(http.StatusOK, MessageResponse{SessionID: id, Reply: reply})
}

// HandleSummary handles GET /v1/transfer/sessions/:id/summary.
//
// Response:
//
//	200 OK: the six transfer slots, null where not yet collected
//	404 Not Found: Unknown session
func (h *Handlers) HandleSummary(c *gin.Context) {
	st, _, ok := h.sessionStore(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.collector.Summary(st))
}

// SendResponse is the body for a transfer execution attempt.
type SendResponse struct {
	SessionID string `json:"session_id"`
	Sent      bool   `json:"sent"`
	Message   string `json:"message"`
}

// HandleSend handles POST /v1/transfer/sessions/:id/send.
//
// Description:
//
//	Attempts the (simulated) transfer. An incomplete transfer returns
//	200 with Sent=false and a message itemizing the missing fields;
//	incompleteness is a conversational outcome, not an HTTP error.
//
// Response:
//
//	200 OK: SendResponse
//	404 Not Found: Unknown session
func (h *Handlers) HandleSend(c *gin.Context) {
	st, id, ok := h.sessionStore(c)
	if !ok {
		return
	}
	msg, sent := h.collector.SendMoney(st)
	c.JSON(http.StatusOK, SendResponse{SessionID: id, Sent: sent, Message: msg})
}

// HandleDeleteSession handles DELETE /v1/transfer/sessions/:id.
//
// Response:
//
//	204 No Content: Session removed (idempotent)
func (h *Handlers) HandleDeleteSession(c *gin.Context) {
	h.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// HandleListTools handles GET /v1/transfer/tools.
//
// Response:
//
//	200 OK: the function-calling schemas for every registered tool
func (h *Handlers) HandleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": tools.FunctionSchemas(h.registry)})
}

// HandleHealth handles GET /v1/transfer/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

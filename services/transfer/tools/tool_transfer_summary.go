// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tools

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/corridorlabs/remitagent/services/transfer/collect"
	"github.com/corridorlabs/remitagent/services/transfer/state"
)

var transferSummaryTracer = otel.Tracer("tools.get_transfer_summary")

// transferSummaryTool reads the current slot snapshot without touching
// it.
//
// Thread Safety: Safe for concurrent use. Read-only.
type transferSummaryTool struct {
	collector *collect.Collector
	sessions  *state.SessionManager
}

// NewTransferSummaryTool creates the get_transfer_summary tool.
func NewTransferSummaryTool(c *collect.Collector, sessions *state.SessionManager) Tool {
	return &transferSummaryTool{collector: c, sessions: sessions}
}

func (t *transferSummaryTool) Name() string {
	return "get_transfer_summary"
}

func (t *transferSummaryTool) Category() ToolCategory {
	return CategoryInspection
}

func (t *transferSummaryTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name: "get_transfer_summary",
		Description: "Get the transfer details collected so far as structured data. " +
			"Fields not yet collected are null. Read-only; never changes state. " +
			"Use when the user asks what information has been gathered.",
		Parameters: map[string]ParamDef{
			"session_id": {
				Type:        ParamTypeString,
				Description: "Conversation session identifier.",
				Required:    true,
			},
		},
		Category:    CategoryInspection,
		SideEffects: false,
		Timeout:     time.Second,
	}
}

// Execute returns the current snapshot.
func (t *transferSummaryTool) Execute(ctx context.Context, params map[string]any) (*Result, error) {
	start := time.Now()

	sessionID, err := parseStringParam(params, "session_id")
	if err != nil {
		return &Result{Success: false, Error: err.Error(), Duration: time.Since(start)}, nil
	}

	_, span := transferSummaryTracer.Start(ctx, "transferSummaryTool.Execute",
		trace.WithAttributes(
			attribute.String("tool", "get_transfer_summary"),
			attribute.String("session_id", sessionID),
		),
	)
	defer span.End()

	st := t.sessions.GetOrCreate(sessionID)
	return &Result{
		Success:  true,
		Output:   t.collector.Summary(st),
		Duration: time.Since(start),
	}, nil
}

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
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/corridorlabs/remitagent/services/transfer/collect"
	"github.com/corridorlabs/remitagent/services/transfer/state"
)

var collectDetailsTracer = otel.Tracer("tools.collect_transfer_details")

// collectDetailsTool runs one slot-filling turn against a session.
//
// Description:
//
//	Feeds the user's utterance through the collection engine: correction
//	detection, per-field extraction and validation, state merge, and
//	reply composition. The reply is returned verbatim for the hosting
//	runtime to show the user.
//
// Thread Safety: Safe for concurrent use across sessions; turns within
// one session must be serialized by the caller.
type collectDetailsTool struct {
	collector *collect.Collector
	sessions  *state.SessionManager
	logger    *slog.Logger
}

// NewCollectDetailsTool creates the collect_transfer_details tool.
//
// Inputs:
//   - c: The collection engine. Must not be nil.
//   - sessions: The session registry. Must not be nil.
func NewCollectDetailsTool(c *collect.Collector, sessions *state.SessionManager) Tool {
	return &collectDetailsTool{
		collector: c,
		sessions:  sessions,
		logger:    slog.Default(),
	}
}

func (t *collectDetailsTool) Name() string {
	return "collect_transfer_details"
}

func (t *collectDetailsTool) Category() ToolCategory {
	return CategoryCollection
}

func (t *collectDetailsTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name: "collect_transfer_details",
		Description: "Extract money-transfer details (amount, currency, beneficiary, country, delivery method) " +
			"from the user's message and merge them into the transfer being assembled. " +
			"Also handles corrections like 'change the amount to $300'. " +
			"Call this for any message that mentions transfer details. " +
			"NOT for vague smalltalk with no transfer content.",
		Parameters: map[string]ParamDef{
			"session_id": {
				Type:        ParamTypeString,
				Description: "Conversation session identifier. The same id must be used for every turn of one transfer.",
				Required:    true,
			},
			"user_input": {
				Type:        ParamTypeString,
				Description: "The user's raw message text for this turn.",
				Required:    true,
			},
		},
		Category:    CategoryCollection,
		SideEffects: true,
		Timeout:     2 * time.Second,
	}
}

// Execute runs one collection turn.
func (t *collectDetailsTool) Execute(ctx context.Context, params map[string]any) (*Result, error) {
	start := time.Now()

	sessionID, err := parseStringParam(params, "session_id")
	if err != nil {
		return &Result{Success: false, Error: err.Error(), Duration: time.Since(start)}, nil
	}
	userInput, err := parseStringParam(params, "user_input")
	if err != nil {
		return &Result{Success: false, Error: err.Error(), Duration: time.Since(start)}, nil
	}

	_, span := collectDetailsTracer.Start(ctx, "collectDetailsTool.Execute",
		trace.WithAttributes(
			attribute.String("tool", "collect_transfer_details"),
			attribute.String("session_id", sessionID),
			attribute.Int("input_length", len(userInput)),
		),
	)
	defer span.End()

	st := t.sessions.GetOrCreate(sessionID)
	reply := t.collector.HandleTurn(st, userInput)

	t.logger.Debug("collection turn handled",
		slog.String("tool", "collect_transfer_details"),
		slog.String("session_id", sessionID),
	)

	return &Result{
		Success:    true,
		OutputText: reply,
		Duration:   time.Since(start),
	}, nil
}

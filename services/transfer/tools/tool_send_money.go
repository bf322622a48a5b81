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

var sendMoneyTracer = otel.Tracer("tools.send_money")

// sendMoneyTool executes the (simulated) transfer for a session.
//
// Description:
//
//	Completeness-gated: with required slots missing it returns
//	Success=false plus a conversational message itemizing what is
//	missing, leaving state untouched so the user can fill the gaps and
//	retry. On success the session is cleared.
//
// Thread Safety: Safe for concurrent use across sessions.
type sendMoneyTool struct {
	collector *collect.Collector
	sessions  *state.SessionManager
	logger    *slog.Logger
}

// NewSendMoneyTool creates the send_money tool.
func NewSendMoneyTool(c *collect.Collector, sessions *state.SessionManager) Tool {
	return &sendMoneyTool{
		collector: c,
		sessions:  sessions,
		logger:    slog.Default(),
	}
}

func (t *sendMoneyTool) Name() string {
	return "send_money"
}

func (t *sendMoneyTool) Category() ToolCategory {
	return CategoryExecution
}

func (t *sendMoneyTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name: "send_money",
		Description: "Execute the money transfer with the details collected so far. " +
			"Only succeeds once amount, currency, beneficiary account, country, and delivery method " +
			"are all collected; otherwise reports what is still missing. " +
			"Call only after the user confirms they want to proceed.",
		Parameters: map[string]ParamDef{
			"session_id": {
				Type:        ParamTypeString,
				Description: "Conversation session identifier.",
				Required:    true,
			},
		},
		Category:    CategoryExecution,
		SideEffects: true,
		Timeout:     2 * time.Second,
	}
}

// Execute attempts the transfer.
func (t *sendMoneyTool) Execute(ctx context.Context, params map[string]any) (*Result, error) {
	start := time.Now()

	sessionID, err := parseStringParam(params, "session_id")
	if err != nil {
		return &Result{Success: false, Error: err.Error(), Duration: time.Since(start)}, nil
	}

	_, span := sendMoneyTracer.Start(ctx, "sendMoneyTool.Execute",
		trace.WithAttributes(
			attribute.String("tool", "send_money"),
			attribute.String("session_id", sessionID),
		),
	)
	defer span.End()

	st := t.sessions.GetOrCreate(sessionID)
	msg, sent := t.collector.SendMoney(st)
	span.SetAttributes(attribute.Bool("sent", sent))

	if !sent {
		t.logger.Info("send blocked on incomplete transfer",
			slog.String("tool", "send_money"),
			slog.String("session_id", sessionID),
		)
		return &Result{
			Success:    false,
			Error:      "transfer incomplete",
			OutputText: msg,
			Duration:   time.Since(start),
		}, nil
	}

	return &Result{
		Success:    true,
		OutputText: msg,
		Duration:   time.Since(start),
	}, nil
}

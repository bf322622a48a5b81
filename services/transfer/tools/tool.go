// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tools exposes the transfer engine to a hosting agent runtime
// as typed, schema-described callable tools: detail collection, summary
// inspection, and transfer execution.
package tools

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// ToolCategory groups tools by what they do to session state.
type ToolCategory string

const (
	// CategoryCollection tools mutate the transfer slots.
	CategoryCollection ToolCategory = "collection"

	// CategoryInspection tools read state without changing it.
	CategoryInspection ToolCategory = "inspection"

	// CategoryExecution tools perform the transfer boundary action.
	CategoryExecution ToolCategory = "execution"
)

// ParamType is the JSON Schema type of a tool parameter.
type ParamType string

const (
	ParamTypeString ParamType = "string"
	ParamTypeInt    ParamType = "integer"
	ParamTypeBool   ParamType = "boolean"
)

// ParamDef describes one tool parameter.
type ParamDef struct {
	// Type is the parameter's JSON Schema type.
	Type ParamType

	// Description explains the parameter to the calling model.
	Description string

	// Required marks parameters the caller must provide.
	Required bool

	// Default is used when an optional parameter is absent.
	Default any
}

// ToolDefinition is the self-describing metadata for one tool.
type ToolDefinition struct {
	// Name is the callable tool name.
	Name string

	// Description tells the calling model what the tool does and when
	// to use it.
	Description string

	// Parameters maps parameter names to their definitions.
	Parameters map[string]ParamDef

	// Category groups the tool by its effect on session state.
	Category ToolCategory

	// SideEffects is true when executing the tool mutates state.
	SideEffects bool

	// Timeout bounds a single execution.
	Timeout time.Duration
}

// Result is the outcome of one tool execution.
//
// Success=false with a populated Error is a handled, user-facing
// failure (bad parameters, incomplete transfer); the error return of
// Execute is reserved for infrastructure problems.
type Result struct {
	// Success reports whether the tool did what was asked.
	Success bool `json:"success"`

	// Output is the structured result, when the tool produces one.
	Output any `json:"output,omitempty"`

	// OutputText is the conversational reply to surface to the user.
	OutputText string `json:"output_text,omitempty"`

	// Error describes a handled failure.
	Error string `json:"error,omitempty"`

	// Duration is the execution wall time.
	Duration time.Duration `json:"duration"`
}

// Tool is one callable operation exposed to the hosting runtime.
//
// Thread Safety: Implementations must be safe for concurrent use; all
// per-conversation state lives in the session store, never on the tool.
type Tool interface {
	// Name returns the callable tool name.
	Name() string

	// Category returns the tool's category.
	Category() ToolCategory

	// Definition returns the tool's self-describing metadata.
	Definition() ToolDefinition

	// Execute runs the tool with loosely typed parameters.
	Execute(ctx context.Context, params map[string]any) (*Result, error)
}

// Registry holds the available tools by name.
//
// Thread Safety: Register during startup, read-only afterwards.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names are a wiring bug and error.
func (r *Registry) Register(t Tool) error {
	if _, exists := r.tools[t.Name()]; exists {
		return fmt.Errorf("tool %q already registered", t.Name())
	}
	r.tools[t.Name()] = t
	return nil
}

// Get returns the tool with the given name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all tool definitions, sorted by name.
func (r *Registry) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.tools))
	for _, name := range r.Names() {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

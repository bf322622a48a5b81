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

import "sort"

// ToolDef is the provider-agnostic function-calling schema exported for
// a hosting agent runtime. Follows the OpenAI function calling layout so
// provider adapters can convert it to their wire formats directly.
type ToolDef struct {
	// Type is always "function".
	Type string `json:"type"`

	// Function contains the function definition.
	Function ToolFunction `json:"function"`
}

// ToolFunction contains the function name, description, and parameter
// schema.
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

// ToolParameters is the JSON Schema object describing the parameters.
type ToolParameters struct {
	// Type is always "object".
	Type string `json:"type"`

	// Properties maps parameter names to their schemas.
	Properties map[string]ToolParamDef `json:"properties,omitempty"`

	// Required lists parameter names that must be provided.
	Required []string `json:"required,omitempty"`
}

// ToolParamDef is a single parameter in JSON Schema form.
type ToolParamDef struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
}

// FunctionSchemas converts every registered tool definition into the
// function-calling schema, sorted by tool name.
func FunctionSchemas(r *Registry) []ToolDef {
	defs := r.Definitions()
	out := make([]ToolDef, 0, len(defs))
	for _, def := range defs {
		props := make(map[string]ToolParamDef, len(def.Parameters))
		var required []string
		for name, p := range def.Parameters {
			props[name] = ToolParamDef{
				Type:        string(p.Type),
				Description: p.Description,
				Default:     p.Default,
			}
			if p.Required {
				required = append(required, name)
			}
		}
		sort.Strings(required)
		out = append(out, ToolDef{
			Type: "function",
			Function: ToolFunction{
				Name:        def.Name,
				Description: def.Description,
				Parameters: ToolParameters{
					Type:       "object",
					Properties: props,
					Required:   required,
				},
			},
		})
	}
	return out
}

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
	"fmt"
	"strings"
)

// parseStringParam extracts a required string parameter.
//
// Inputs:
//   - params: The raw parameter map.
//   - name: The parameter to extract.
//
// Outputs:
//   - string: The trimmed value.
//   - error: Non-nil when the parameter is missing, not a string, or
//     blank.
func parseStringParam(params map[string]any, name string) (string, error) {
	raw, ok := params[name]
	if !ok {
		return "", fmt.Errorf("missing required parameter %q", name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string, got %T", name, raw)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("parameter %q must not be empty", name)
	}
	return s, nil
}

// parseOptionalStringParam extracts an optional string parameter,
// returning def when absent. A present non-string value is still an
// error; silent coercion hides caller bugs.
func parseOptionalStringParam(params map[string]any, name, def string) (string, error) {
	raw, ok := params[name]
	if !ok {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string, got %T", name, raw)
	}
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return strings.TrimSpace(s), nil
}

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
	"github.com/corridorlabs/remitagent/services/transfer/collect"
	"github.com/corridorlabs/remitagent/services/transfer/state"
)

// DefaultRegistry builds the standard tool set over one collection
// engine and session registry.
func DefaultRegistry(c *collect.Collector, sessions *state.SessionManager) (*Registry, error) {
	r := NewRegistry()
	for _, t := range []Tool{
		NewCollectDetailsTool(c, sessions),
		NewTransferSummaryTool(c, sessions),
		NewSendMoneyTool(c, sessions),
	} {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

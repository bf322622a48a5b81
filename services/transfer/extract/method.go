// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package extract

import (
	"strings"

	"github.com/corridorlabs/remitagent/services/transfer/catalog"
)

// DeliveryMethod extracts a payout channel from text.
//
// Aliases are matched as plain substrings of the lowercased text, in
// catalog order. Multi-word aliases come first in the table so "mobile
// wallet" resolves before the bare "mobile" would.
func DeliveryMethod(c *catalog.Catalog, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, m := range c.DeliveryMethods {
		for _, alias := range m.Aliases {
			if strings.Contains(lower, alias) {
				return m.Method, true
			}
		}
	}
	return "", false
}

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
	"regexp"
	"strings"

	"github.com/corridorlabs/remitagent/services/transfer/catalog"
)

var (
	// A currency code (or its prefix) glued directly to a number:
	// "100usd", "100USD", "100U".
	attachedCurrencyPattern = regexp.MustCompile(`\d+(?:\.\d{1,2})?([A-Z]{1,3})\b`)

	// A free-standing 3-letter token.
	currencyCodePattern = regexp.MustCompile(`\b([A-Z]{3})\b`)
)

// Currency extracts a canonical currency code from text.
//
// Three tiers, first hit wins:
//
//  1. Letters glued to a number, resolved by exact match then by prefix
//     against the codes in catalog declaration order ("100C" → COP).
//  2. The first free-standing 3-letter token, if it is a canonical code.
//     Only the first such token is considered; a non-code token like
//     "THE" falls through to tier 3 rather than scanning further.
//  3. Any known currency name or synonym, word-bounded, in table order.
func Currency(c *catalog.Catalog, text string) (string, bool) {
	upper := strings.ToUpper(text)

	if m := attachedCurrencyPattern.FindStringSubmatch(upper); m != nil {
		letters := m[1]
		if c.IsCurrencyCode(letters) {
			return letters, true
		}
		for _, code := range c.CurrencyCodes() {
			if strings.HasPrefix(code, letters) {
				return code, true
			}
		}
	}

	if m := currencyCodePattern.FindStringSubmatch(upper); m != nil {
		if c.IsCurrencyCode(m[1]) {
			return m[1], true
		}
	}

	if code, ok := c.MatchCurrencyName(strings.ToLower(strings.TrimSpace(text))); ok {
		return code, true
	}

	return "", false
}

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

	"github.com/shopspring/decimal"
)

// Amount patterns, in priority order: a $-prefixed number beats a bare
// standalone number. Bare numbers are capped at 6 integer digits so long
// digit runs (account numbers) never qualify — \b on both sides means an
// 8-digit account cannot yield a 6-digit amount prefix either.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`\b(\d{1,6}(?:\.\d{1,2})?)\b`),
}

var (
	minAmount = decimal.NewFromInt(1)
	maxAmount = decimal.NewFromInt(1_000_000)
)

// Amount extracts a monetary amount from text.
//
// The first left-to-right match with a magnitude in [1, 1,000,000]
// wins. Returns false when no qualifying number is present.
func Amount(text string) (decimal.Decimal, bool) {
	for _, re := range amountPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			amt, err := decimal.NewFromString(m[1])
			if err != nil {
				continue
			}
			if amt.GreaterThanOrEqual(minAmount) && amt.LessThanOrEqual(maxAmount) {
				return amt, true
			}
		}
	}
	return decimal.Decimal{}, false
}

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

// Account patterns, in priority order:
//
//  1. Labeled forms ("account: X", "cuenta X") capturing the trailing
//     alphanumeric token.
//  2. AC-prefixed alphanumeric codes of 6+ trailing characters.
//  3. ACC- prefixed codes (hyphen optional).
//  4. A 2-4 letter prefix followed by 6+ digits (digits only — this arm
//     must not swallow arbitrary alphanumerics).
//  5. A bare 8+ digit number.
//
// First qualifying pattern, first match, wins.
var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:account|acc|account number|account#|cuenta|cuenta número)\s*:?\s*([A-Z0-9-]+)`),
	regexp.MustCompile(`(?i)\b(AC[A-Z0-9]{6,})\b`),
	regexp.MustCompile(`(?i)\b(ACC-?[A-Z0-9]{6,})\b`),
	regexp.MustCompile(`(?i)\b([A-Z]{2,4}-?\d{6,})\b`),
	regexp.MustCompile(`\b(\d{8,})\b`),
}

// normalizedAccountPrefix is applied to pure-digit accounts.
const normalizedAccountPrefix = "ACC-"

// AccountNumber extracts a beneficiary account identifier from text.
//
// Country mentions are stripped first so a country name is never misread
// as an account. Matches containing letters are returned uppercased
// verbatim; pure-digit matches of 8+ digits are normalized to the
// ACC-<digits> form. Shorter pure-digit captures are skipped and
// scanning continues.
func AccountNumber(c *catalog.Catalog, text string) (string, bool) {
	stripped := c.StripCountryMentions(text)

	for _, re := range accountPatterns {
		for _, m := range re.FindAllStringSubmatch(stripped, -1) {
			acct := strings.ToUpper(strings.TrimSpace(m[1]))
			if containsLetter(acct) {
				return acct, true
			}
			digits := strings.NewReplacer("-", "", " ", "").Replace(acct)
			if len(digits) >= 8 && digitsOnly(digits) {
				return normalizedAccountPrefix + digits, true
			}
		}
	}
	return "", false
}

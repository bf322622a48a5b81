// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package extract holds the per-field extractors that pull money-transfer
// parameters out of free-form user text, plus the correction detector.
//
// Every extractor is a pure function: same text in, same value out, no
// errors, no mutation. An extractor only answers "did this text contain a
// plausible value for my field" — cross-field conflict resolution (a
// country token that looks like a name, digits that could be an amount or
// an account) is the collect orchestrator's job, which calls the
// extractors in a fixed priority order.
//
// The match priorities inside each extractor are hand-tuned and
// deliberately asymmetric; reordering patterns changes behavior on
// ambiguous input. See the per-function comments.
package extract

import "strings"

// Canonical field keys shared with the session state. These are the only
// values the correction detector and orchestrator pass around.
const (
	FieldAmount             = "amount"
	FieldCurrency           = "currency"
	FieldBeneficiaryAccount = "beneficiary_account"
	FieldBeneficiaryName    = "beneficiary_name"
	FieldCountry            = "country"
	FieldDeliveryMethod     = "delivery_method"
)

// containsDigit reports whether s contains any ASCII digit.
func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// containsLetter reports whether s contains any ASCII letter.
func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// digitsOnly reports whether s consists solely of ASCII digits.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

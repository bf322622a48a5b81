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
)

// Correction is an explicit request to replace one already-collected
// field. Value carries the raw replacement text in its original case and
// may be empty when the user named the field but not the new value.
type Correction struct {
	Field string
	Value string
}

// correctionPattern matches "change [the|my] <field> [to] <value>". The
// article is skipped so "change the amount to $300" resolves to the
// amount field rather than capturing "the".
var correctionPattern = regexp.MustCompile(`(?i)change\s+(?:(?:the|my)\s+)?(\w+)(?:\s+to\s+)?(.+)?`)

// correctionFields maps the word the user used to the canonical slot key.
var correctionFields = map[string]string{
	"amount":      FieldAmount,
	"country":     FieldCountry,
	"currency":    FieldCurrency,
	"beneficiary": FieldBeneficiaryName,
	"name":        FieldBeneficiaryName,
	"account":     FieldBeneficiaryAccount,
	"delivery":    FieldDeliveryMethod,
	"method":      FieldDeliveryMethod,
}

// DetectCorrection reports whether text is a field correction.
//
// Only recognized field words produce a correction; "change the weather"
// is not one. The replacement value keeps the user's original casing so
// downstream extraction of names and account codes still works.
func DetectCorrection(text string) (Correction, bool) {
	m := correctionPattern.FindStringSubmatch(text)
	if m == nil {
		return Correction{}, false
	}
	field, ok := correctionFields[strings.ToLower(m[1])]
	if !ok {
		return Correction{}, false
	}
	return Correction{Field: field, Value: strings.TrimSpace(m[2])}, true
}

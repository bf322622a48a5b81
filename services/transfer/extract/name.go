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

// nameStopWords are single tokens that can never be a beneficiary name on
// their own: greetings, politeness, field vocabulary, country and currency
// words. Lowercase.
var nameStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "hello": {}, "hi": {}, "hey": {}, "hola": {},
	"good": {}, "morning": {}, "afternoon": {}, "evening": {}, "night": {},
	"thanks": {}, "thank": {}, "please": {},
	"yes": {}, "no": {}, "ok": {}, "okay": {}, "sure": {}, "alright": {},
	"send": {}, "money": {},
	"dollars": {}, "pesos": {}, "usd": {}, "mxn": {}, "cop": {}, "hnl": {},
	"dop": {}, "nio": {}, "gtq": {},
	"bank": {}, "transfer": {}, "card": {}, "wallet": {}, "pickup": {},
	"cash": {}, "mobile": {},
	"mexico": {}, "honduras": {}, "colombia": {}, "nicaragua": {},
	"guatemala": {}, "salvador": {}, "dominican": {}, "republic": {},
	"change": {}, "update": {}, "amount": {}, "currency": {},
	"to": {}, "for": {}, "with": {}, "and": {}, "or": {}, "but": {},
	"is": {}, "are": {}, "was": {}, "were": {},
	"someone": {}, "somebody": {}, "person": {}, "recipient": {}, "beneficiary": {},
}

// nameStopPhrases abort name extraction for the whole utterance. An input
// built around "send money to" is an intent statement, and picking a name
// out of it produces garbage far more often than a real beneficiary.
var nameStopPhrases = []string{
	"send money", "send money to", "send to", "money to", "want to send",
	"help me send", "i want to", "would like to", "need to send",
}

// Candidate names are runs of one to three alphabetic words, each two or
// more letters. Case is preserved in the result.
var namePattern = regexp.MustCompile(`\b([A-Za-z]{2,}(?:\s+[A-Za-z]{2,}){0,2})\b`)

// stopPhraseTerms are phrases rejected per-candidate even when the
// utterance as a whole passed the phrase gate.
var stopPhraseTerms = []string{"send money", "bank transfer", "mobile wallet", "cash pickup"}

// BeneficiaryName extracts a beneficiary name from text.
//
// Description:
//
//	No trigger word is required; any run of up to three alphabetic words
//	is a candidate, filtered against stop words, stop phrases, country
//	names, currency codes, and digit content. The first survivor wins
//	with its original casing. Inputs dominated by transfer-intent
//	phrasing ("send money to ...") yield no name at all.
//
// Inputs:
//   - c: Catalog used to recognize country names and currency codes.
//   - text: Raw user text.
//
// Outputs:
//   - string: The extracted name, original case.
//   - bool: False when no candidate survives filtering.
func BeneficiaryName(c *catalog.Catalog, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range nameStopPhrases {
		if strings.Contains(lower, phrase) {
			return "", false
		}
	}

	for _, m := range namePattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		nameLower := strings.ToLower(name)

		if _, stop := nameStopWords[nameLower]; stop {
			continue
		}
		if containsAny(nameLower, nameStopPhrases) {
			continue
		}
		if c.IsCountryName(name) {
			continue
		}
		if len(name) == 3 && name == strings.ToUpper(name) && c.IsCurrencyCode(name) {
			continue
		}
		compact := strings.ReplaceAll(name, " ", "")
		if digitsOnly(compact) || len(compact) <= 1 {
			continue
		}
		if containsDigit(name) {
			continue
		}
		skip := false
		for _, p := range stopPhraseTerms {
			if nameLower == p {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		return name, true
	}
	return "", false
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

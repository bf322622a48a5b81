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

// Country extracts a canonical country key from text by word-bounded,
// case-insensitive match against every known name variant (including
// multi-word variants), in catalog table order.
func Country(c *catalog.Catalog, text string) (string, bool) {
	return c.MatchCountryVariant(strings.ToLower(strings.TrimSpace(text)))
}

// Trailing destination phrase: "... in <word>" at the end of an
// utterance. Used by the orchestrator as a country candidate when no
// known variant matched, so an unsupported destination like "in Atlantis"
// gets a validation error instead of being silently ignored.
var destinationPattern = regexp.MustCompile(`(?i)\bin\s+([A-Za-z]{2,})[\s.!?]*$`)

// DestinationCandidate returns the trailing "in <word>" token, if any.
func DestinationCandidate(text string) (string, bool) {
	if m := destinationPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

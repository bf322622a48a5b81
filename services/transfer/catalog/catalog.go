// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog holds the fixed remittance domain catalog: supported
// corridor countries, payout currencies with their spoken-name variants,
// and delivery methods with their aliases.
//
// The catalog is data, not behavior. It is loaded once from an embedded
// YAML file at first use and is immutable afterwards; every lookup the
// extractors and validators perform goes through it. The entry ordering
// in the YAML is part of the contract — see catalog.yaml.
package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Country is one supported destination corridor.
type Country struct {
	// Key is the canonical uppercase country identifier (e.g. "MEXICO").
	Key string `yaml:"key"`

	// Currency is the 3-letter payout currency code for this corridor.
	Currency string `yaml:"currency"`

	// Variants are the lowercase spoken/written forms that resolve to Key.
	// Matched word-bounded, in order.
	Variants []string `yaml:"variants"`
}

// Currency is one supported payout currency.
type Currency struct {
	// Code is the canonical 3-letter currency code.
	Code string `yaml:"code"`

	// Names are lowercase names and synonyms that resolve to Code.
	Names []string `yaml:"names"`
}

// DeliveryMethod is one supported payout channel.
type DeliveryMethod struct {
	// Method is the canonical display name (e.g. "Cash Pickup").
	Method string `yaml:"method"`

	// Aliases are lowercase substrings that resolve to Method, in
	// priority order.
	Aliases []string `yaml:"aliases"`
}

// Catalog is the immutable domain catalog.
//
// Thread Safety: Immutable after Load; safe for concurrent use.
type Catalog struct {
	Countries       []Country        `yaml:"countries"`
	Currencies      []Currency       `yaml:"currencies"`
	DeliveryMethods []DeliveryMethod `yaml:"delivery_methods"`

	// Derived lookup structures, built in Load.
	countryByKey    map[string]*Country
	currencyByCode  map[string]*Currency
	variantPatterns []variantPattern
	namePatterns    []namePattern
	stripPatterns   []*regexp.Regexp
}

// variantPattern pairs a compiled word-bounded country variant with its
// canonical key.
type variantPattern struct {
	key string
	re  *regexp.Regexp
}

// namePattern pairs a compiled word-bounded currency name with its code.
type namePattern struct {
	code string
	re   *regexp.Regexp
}

// Load parses a catalog from YAML and builds its derived lookups.
//
// Description:
//
//	Validates referential integrity (every country's currency must be a
//	declared currency) and precompiles the word-bounded matchers used by
//	the extractors. Returns an error rather than a partially built
//	catalog.
//
// Inputs:
//   - data: Raw YAML bytes.
//
// Outputs:
//   - *Catalog: The loaded catalog.
//   - error: Non-nil if the YAML is malformed or inconsistent.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Countries) == 0 || len(c.Currencies) == 0 || len(c.DeliveryMethods) == 0 {
		return nil, fmt.Errorf("catalog is missing countries, currencies, or delivery methods")
	}

	c.currencyByCode = make(map[string]*Currency, len(c.Currencies))
	for i := range c.Currencies {
		cur := &c.Currencies[i]
		if len(cur.Code) != 3 || cur.Code != strings.ToUpper(cur.Code) {
			return nil, fmt.Errorf("currency code %q must be 3 uppercase letters", cur.Code)
		}
		c.currencyByCode[cur.Code] = cur
	}

	c.countryByKey = make(map[string]*Country, len(c.Countries))
	for i := range c.Countries {
		ctry := &c.Countries[i]
		if ctry.Key != strings.ToUpper(ctry.Key) {
			return nil, fmt.Errorf("country key %q must be uppercase", ctry.Key)
		}
		if _, ok := c.currencyByCode[ctry.Currency]; !ok {
			return nil, fmt.Errorf("country %s references unknown currency %s", ctry.Key, ctry.Currency)
		}
		c.countryByKey[ctry.Key] = ctry

		for _, v := range ctry.Variants {
			c.variantPatterns = append(c.variantPatterns, variantPattern{
				key: ctry.Key,
				re:  wordBounded(v, false),
			})
		}

		// Account extraction strips country mentions before matching so a
		// country is never mis-read as an account number. Strip the
		// canonical key plus any multi-word variant (short abbreviations
		// like "col" stay, or they would eat legitimate account prefixes).
		c.stripPatterns = append(c.stripPatterns, wordBounded(strings.ToLower(ctry.Key), true))
		for _, v := range ctry.Variants {
			if strings.Contains(v, " ") && !strings.EqualFold(v, ctry.Key) {
				c.stripPatterns = append(c.stripPatterns, wordBounded(v, true))
			}
		}
	}

	for i := range c.Currencies {
		cur := &c.Currencies[i]
		for _, n := range cur.Names {
			c.namePatterns = append(c.namePatterns, namePattern{
				code: cur.Code,
				re:   wordBounded(n, false),
			})
		}
	}

	return &c, nil
}

// wordBounded compiles a word-bounded literal matcher. caseInsensitive
// adds (?i); variant/name tables are already lowercase and are matched
// against lowercased text, so they do not need it.
func wordBounded(literal string, caseInsensitive bool) *regexp.Regexp {
	expr := `\b` + regexp.QuoteMeta(literal) + `\b`
	if caseInsensitive {
		expr = `(?i)` + expr
	}
	return regexp.MustCompile(expr)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog loaded from the embedded YAML.
//
// The embedded data is fixed at build time, so a load failure is a
// programming error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog.yaml is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// IsCountryKey reports whether key is a canonical country identifier.
func (c *Catalog) IsCountryKey(key string) bool {
	_, ok := c.countryByKey[key]
	return ok
}

// IsCountryName reports whether s, compared case-insensitively, names a
// supported country outright: either a canonical key or a multi-word
// variant such as "Dominican Republic". Single-word abbreviations do
// not count; they are too ambiguous out of context.
func (c *Catalog) IsCountryName(s string) bool {
	if c.IsCountryKey(strings.ToUpper(s)) {
		return true
	}
	for _, ctry := range c.Countries {
		for _, v := range ctry.Variants {
			if strings.Contains(v, " ") && strings.EqualFold(v, s) {
				return true
			}
		}
	}
	return false
}

// IsCurrencyCode reports whether code is a canonical currency code.
func (c *Catalog) IsCurrencyCode(code string) bool {
	_, ok := c.currencyByCode[code]
	return ok
}

// CurrencyFor returns the payout currency code for a canonical country key.
func (c *Catalog) CurrencyFor(countryKey string) (string, bool) {
	ctry, ok := c.countryByKey[countryKey]
	if !ok {
		return "", false
	}
	return ctry.Currency, true
}

// CurrencyCodes returns the currency codes in declaration order. Prefix
// resolution of codes glued to numbers walks this slice, so the order is
// part of the extraction contract.
func (c *Catalog) CurrencyCodes() []string {
	codes := make([]string, len(c.Currencies))
	for i, cur := range c.Currencies {
		codes[i] = cur.Code
	}
	return codes
}

// SortedCountryKeys returns the canonical country keys sorted
// alphabetically, for user-facing supported-value lists.
func (c *Catalog) SortedCountryKeys() []string {
	keys := make([]string, len(c.Countries))
	for i, ctry := range c.Countries {
		keys[i] = ctry.Key
	}
	sort.Strings(keys)
	return keys
}

// SortedCurrencyCodes returns the currency codes sorted alphabetically,
// for user-facing supported-value lists.
func (c *Catalog) SortedCurrencyCodes() []string {
	codes := c.CurrencyCodes()
	sort.Strings(codes)
	return codes
}

// MethodNames returns the canonical delivery method names in declaration
// order.
func (c *Catalog) MethodNames() []string {
	names := make([]string, len(c.DeliveryMethods))
	for i, m := range c.DeliveryMethods {
		names[i] = m.Method
	}
	return names
}

// MatchCountryVariant scans lowercased text for the first word-bounded
// country variant, in table order, and returns the canonical key.
func (c *Catalog) MatchCountryVariant(lowerText string) (string, bool) {
	for _, vp := range c.variantPatterns {
		if vp.re.MatchString(lowerText) {
			return vp.key, true
		}
	}
	return "", false
}

// MatchCurrencyName scans lowercased text for the first word-bounded
// currency name, in table order, and returns the canonical code.
func (c *Catalog) MatchCurrencyName(lowerText string) (string, bool) {
	for _, np := range c.namePatterns {
		if np.re.MatchString(lowerText) {
			return np.code, true
		}
	}
	return "", false
}

// StripCountryMentions removes canonical country names (and multi-word
// variants) from text, case-insensitively and word-bounded.
func (c *Catalog) StripCountryMentions(text string) string {
	for _, re := range c.stripPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

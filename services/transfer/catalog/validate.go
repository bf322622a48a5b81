// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"fmt"
	"strings"
)

// Validators check a candidate value against the canonical catalog sets.
// On rejection the returned error text is the conversational hint the
// orchestrator surfaces to the user verbatim: it names the nearest
// plausible match when one exists, otherwise it lists the full supported
// set. Validators never mutate state.

// ValidateCountry resolves a candidate country to its canonical key.
//
// Accepts the canonical key or any known variant (case-insensitive). On
// rejection, a substring containment check against the canonical keys
// produces a "Did you mean" hint.
func (c *Catalog) ValidateCountry(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	upper := strings.ToUpper(trimmed)
	if c.IsCountryKey(upper) {
		return upper, nil
	}
	for _, ctry := range c.Countries {
		for _, v := range ctry.Variants {
			if strings.EqualFold(trimmed, v) {
				return ctry.Key, nil
			}
		}
	}

	supported := strings.Join(c.SortedCountryKeys(), ", ")
	for _, ctry := range c.Countries {
		if upper != "" && (strings.Contains(ctry.Key, upper) || strings.Contains(upper, ctry.Key)) {
			return "", fmt.Errorf("Did you mean '%s'? Supported countries are: %s", ctry.Key, supported)
		}
	}
	return "", fmt.Errorf("'%s' is not a supported country. Supported countries are: %s", trimmed, supported)
}

// ValidateCurrency resolves a candidate currency to its canonical code.
//
// Accepts the 3-letter code or any known currency name.
func (c *Catalog) ValidateCurrency(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	upper := strings.ToUpper(trimmed)
	if c.IsCurrencyCode(upper) {
		return upper, nil
	}
	lower := strings.ToLower(trimmed)
	for _, cur := range c.Currencies {
		for _, n := range cur.Names {
			if lower == n {
				return cur.Code, nil
			}
		}
	}
	return "", fmt.Errorf("'%s' is not a supported currency. Supported currencies are: %s",
		trimmed, strings.Join(c.SortedCurrencyCodes(), ", "))
}

// ValidateDeliveryMethod resolves a candidate delivery method to its
// canonical name via the alias table.
func (c *Catalog) ValidateDeliveryMethod(value string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	for _, m := range c.DeliveryMethods {
		for _, alias := range m.Aliases {
			if lower == alias {
				return m.Method, nil
			}
		}
	}
	names := c.MethodNames()
	supported := strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	return "", fmt.Errorf("'%s' is not a supported delivery method. Supported methods are: %s",
		strings.TrimSpace(value), supported)
}

// ExpectedFormats returns the per-field format hints used in guidance
// messages, keyed by canonical field name.
func (c *Catalog) ExpectedFormats() map[string]string {
	names := c.MethodNames()
	return map[string]string{
		"amount":   `a number (e.g., "100", "$100", "100.50")`,
		"currency": fmt.Sprintf(`a currency code or name. Supported: %s (or "dollars", "pesos", "quetzales", etc.)`, strings.Join(c.SortedCurrencyCodes(), ", ")),
		"country":  "one of: " + strings.Join(c.SortedCountryKeys(), ", "),
		"beneficiary_account": `an account number (e.g., "ACC-123456", "AC12629233", or just the number like "12629233")`,
		"beneficiary_name":    `a person's name (e.g., "John Smith", "Maria Garcia")`,
		"delivery_method":     "one of: " + strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1],
	}
}

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
	"strings"
	"testing"
)

func TestValidateCountry(t *testing.T) {
	c := Default()

	t.Run("accepts canonical keys", func(t *testing.T) {
		for _, key := range c.SortedCountryKeys() {
			got, err := c.ValidateCountry(key)
			if err != nil {
				t.Errorf("ValidateCountry(%q) error: %v", key, err)
				continue
			}
			if got != key {
				t.Errorf("ValidateCountry(%q) = %q", key, got)
			}
		}
	})

	t.Run("accepts variants case-insensitively", func(t *testing.T) {
		cases := map[string]string{
			"mexico":             "MEXICO",
			"Dominican Republic": "REPUBLICA DOMINICANA",
			"salvador":           "EL SALVADOR",
			"Guate":              "GUATEMALA",
		}
		for in, want := range cases {
			got, err := c.ValidateCountry(in)
			if err != nil || got != want {
				t.Errorf("ValidateCountry(%q) = %q, %v; want %q", in, got, err, want)
			}
		}
	})

	t.Run("nearest match hint", func(t *testing.T) {
		_, err := c.ValidateCountry("Colomb")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "Did you mean 'COLOMBIA'?") {
			t.Errorf("expected nearest-match hint, got: %v", err)
		}
	})

	t.Run("unsupported country lists all seven", func(t *testing.T) {
		_, err := c.ValidateCountry("Atlantis")
		if err == nil {
			t.Fatal("expected error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "'Atlantis' is not a supported country") {
			t.Errorf("expected rejection naming the value, got: %v", err)
		}
		for _, key := range c.SortedCountryKeys() {
			if !strings.Contains(msg, key) {
				t.Errorf("supported list missing %s: %v", key, err)
			}
		}
	})
}

func TestValidateCurrency(t *testing.T) {
	c := Default()

	t.Run("accepts codes in any case", func(t *testing.T) {
		for _, in := range []string{"USD", "usd", "Mxn", "COP"} {
			if _, err := c.ValidateCurrency(in); err != nil {
				t.Errorf("ValidateCurrency(%q) error: %v", in, err)
			}
		}
	})

	t.Run("accepts names", func(t *testing.T) {
		cases := map[string]string{
			"dollars":   "USD",
			"lempiras":  "HNL",
			"quetzales": "GTQ",
			"córdoba":   "NIO",
		}
		for in, want := range cases {
			got, err := c.ValidateCurrency(in)
			if err != nil || got != want {
				t.Errorf("ValidateCurrency(%q) = %q, %v; want %q", in, got, err, want)
			}
		}
	})

	t.Run("rejects unknown with supported list", func(t *testing.T) {
		_, err := c.ValidateCurrency("EUR")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "Supported currencies are: COP, DOP, GTQ, HNL, MXN, NIO, USD") {
			t.Errorf("unexpected message: %v", err)
		}
	})
}

func TestValidateDeliveryMethod(t *testing.T) {
	c := Default()

	t.Run("accepts aliases", func(t *testing.T) {
		cases := map[string]string{
			"wire":          "Bank Transfer",
			"Bank Transfer": "Bank Transfer",
			"wallet":        "Mobile Wallet",
			"pickup":        "Cash Pickup",
			"credit card":   "Card",
		}
		for in, want := range cases {
			got, err := c.ValidateDeliveryMethod(in)
			if err != nil || got != want {
				t.Errorf("ValidateDeliveryMethod(%q) = %q, %v; want %q", in, got, err, want)
			}
		}
	})

	t.Run("rejects unknown with supported list", func(t *testing.T) {
		_, err := c.ValidateDeliveryMethod("carrier pigeon")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "Bank Transfer, Mobile Wallet, Cash Pickup, or Card") {
			t.Errorf("unexpected message: %v", err)
		}
	})
}

func TestExpectedFormats(t *testing.T) {
	formats := Default().ExpectedFormats()
	for _, field := range []string{"amount", "currency", "country", "beneficiary_account", "beneficiary_name", "delivery_method"} {
		if formats[field] == "" {
			t.Errorf("missing format hint for %s", field)
		}
	}
}

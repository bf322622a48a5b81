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
	"testing"

	"github.com/corridorlabs/remitagent/services/transfer/catalog"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "dollar_prefixed", text: "$100", want: "100", found: true},
		{name: "bare_decimal", text: "send 250.50", want: "250.5", found: true},
		{name: "bare_integer_in_sentence", text: "make it 300", want: "300", found: true},
		{name: "account_length_run_ignored", text: "12345678", found: false},
		{name: "below_minimum", text: "0.5 only", found: false},
		{name: "above_maximum", text: "7000000", found: false},
		{name: "comma_grouping_not_understood", text: "$1,000", want: "1", found: true},
		{name: "no_number", text: "send money to Bob", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Amount(tt.text)
			if ok != tt.found {
				t.Fatalf("Amount(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && got.String() != tt.want {
				t.Errorf("Amount(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestCurrency(t *testing.T) {
	c := catalog.Default()
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "attached_full_code", text: "100usd", want: "USD", found: true},
		{name: "attached_uppercase_code", text: "100MXN", want: "MXN", found: true},
		{name: "attached_prefix_resolves_in_table_order", text: "100C", want: "COP", found: true},
		{name: "freestanding_code", text: "500 USD", want: "USD", found: true},
		{name: "currency_name", text: "I'll pay in lempiras", want: "HNL", found: true},
		{name: "multiword_currency_name", text: "mexican pesos please", want: "MXN", found: true},
		{name: "accented_synonym", text: "cordobas", want: "NIO", found: true},
		{name: "no_currency", text: "nothing here", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Currency(c, tt.text)
			if ok != tt.found {
				t.Fatalf("Currency(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if got != tt.want && ok {
				t.Errorf("Currency(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountry(t *testing.T) {
	c := catalog.Default()
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "simple_mention", text: "to Mexico", want: "MEXICO", found: true},
		{name: "lowercase", text: "colombia", want: "COLOMBIA", found: true},
		{name: "english_variant_maps_to_canonical", text: "Dominican Republic", want: "REPUBLICA DOMINICANA", found: true},
		{name: "two_word_key", text: "el salvador", want: "EL SALVADOR", found: true},
		{name: "word_bounded_no_partial", text: "chocolate", found: false},
		{name: "unknown_abbreviation", text: "DR", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Country(c, tt.text)
			if ok != tt.found {
				t.Fatalf("Country(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("Country(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDestinationCandidate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "trailing_in_phrase", text: "Send $100 to Bob in Atlantis", want: "Atlantis", found: true},
		{name: "trailing_punctuation", text: "send it in Wakanda!", want: "Wakanda", found: true},
		{name: "mid_sentence_in_not_trailing", text: "in Mexico we trust money", found: false},
		{name: "no_in_phrase", text: "send $100 to Bob", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DestinationCandidate(tt.text)
			if ok != tt.found {
				t.Fatalf("DestinationCandidate(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("DestinationCandidate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAccountNumber(t *testing.T) {
	c := catalog.Default()
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "acc_dash_code", text: "ACC-123456", want: "ACC-123456", found: true},
		{name: "ac_alphanumeric", text: "AC12629233", want: "AC12629233", found: true},
		{name: "labeled_form_grabs_next_token", text: "account number 123", want: "NUMBER", found: true},
		{name: "bare_digits_normalized", text: "12345678", want: "ACC-12345678", found: true},
		{name: "prefix_code_survives_country_strip", text: "COL-123456 for Colombia", want: "COL-123456", found: true},
		{name: "country_name_not_an_account", text: "send to Colombia", found: false},
		{name: "spanish_label", text: "cuenta: 98765432", want: "ACC-98765432", found: true},
		{name: "short_digits_rejected", text: "1234", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AccountNumber(c, tt.text)
			if ok != tt.found {
				t.Fatalf("AccountNumber(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("AccountNumber(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestBeneficiaryName(t *testing.T) {
	c := catalog.Default()
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "single_name", text: "Maria", want: "Maria", found: true},
		{name: "two_word_name", text: "Daniela Varela", want: "Daniela Varela", found: true},
		{name: "three_word_cap", text: "Juan Carlos Perez Gomez", want: "Juan Carlos Perez", found: true},
		{name: "leading_preposition_kept", text: "to Bob", want: "to Bob", found: true},
		{name: "intent_phrase_blocks_extraction", text: "I want to send money to Maria", found: false},
		{name: "leading_filler_wins_over_real_name", text: "please send it to Maria Lopez", want: "please send it", found: true},
		{name: "filler_word_is_a_candidate", text: "Actually, make it 300", want: "Actually", found: true},
		{name: "account_code_letters_leak", text: "ACC-123456", want: "ACC", found: true},
		{name: "country_alone_rejected", text: "Mexico", found: false},
		{name: "currency_code_alone_rejected", text: "USD", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BeneficiaryName(c, tt.text)
			if ok != tt.found {
				t.Fatalf("BeneficiaryName(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("BeneficiaryName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDeliveryMethod(t *testing.T) {
	c := catalog.Default()
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "bank_transfer", text: "bank transfer", want: "Bank Transfer", found: true},
		{name: "wire_alias", text: "by wire please", want: "Bank Transfer", found: true},
		{name: "mobile_wallet", text: "mobile wallet", want: "Mobile Wallet", found: true},
		{name: "debit_card", text: "use my debit card", want: "Card", found: true},
		{name: "cash_pickup", text: "cash pickup", want: "Cash Pickup", found: true},
		{name: "substring_match_not_word_bounded", text: "walletless", want: "Mobile Wallet", found: true},
		{name: "no_method", text: "send $100 to Bob", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeliveryMethod(c, tt.text)
			if ok != tt.found {
				t.Fatalf("DeliveryMethod(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("DeliveryMethod(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectCorrection(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
		value string
		found bool
	}{
		{name: "amount", text: "change amount to 500", field: FieldAmount, value: "500", found: true},
		{name: "amount_with_article", text: "Actually, change the amount to $300", field: FieldAmount, value: "$300", found: true},
		{name: "name_keeps_case", text: "change name to Maria", field: FieldBeneficiaryName, value: "Maria", found: true},
		{name: "account_keeps_case", text: "Change account to AC999999", field: FieldBeneficiaryAccount, value: "AC999999", found: true},
		{name: "method_synonym", text: "change method to cash pickup", field: FieldDeliveryMethod, value: "cash pickup", found: true},
		{name: "field_without_value", text: "change the currency", field: FieldCurrency, value: "", found: true},
		{name: "unknown_field_word", text: "change weather to sunny", found: false},
		{name: "no_change_verb", text: "make the amount 500", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectCorrection(tt.text)
			if ok != tt.found {
				t.Fatalf("DetectCorrection(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if !ok {
				return
			}
			if got.Field != tt.field || got.Value != tt.value {
				t.Errorf("DetectCorrection(%q) = {%q %q}, want {%q %q}", tt.text, got.Field, got.Value, tt.field, tt.value)
			}
		})
	}
}

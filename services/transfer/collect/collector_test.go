// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package collect

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corridorlabs/remitagent/services/transfer/catalog"
	"github.com/corridorlabs/remitagent/services/transfer/state"
)

func newTestCollector() *Collector {
	return New(catalog.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad amount literal %q: %v", s, err)
	}
	return d
}

func TestCompleteFlowSingleMessage(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()

	reply := c.HandleTurn(st, "I want to send $500 USD to John Smith AC123456 in Colombia via Bank Transfer")
	if !strings.HasPrefix(reply, "Great, I have everything!") {
		t.Fatalf("expected completion summary, got: %s", reply)
	}

	s := state.FromStore(st)
	if !s.Amount.Equal(mustAmount(t, "500")) {
		t.Errorf("amount = %s, want 500", s.Amount)
	}
	if s.Currency != "USD" {
		t.Errorf("currency = %q, want USD", s.Currency)
	}
	if s.BeneficiaryAccount != "AC123456" {
		t.Errorf("account = %q, want AC123456", s.BeneficiaryAccount)
	}
	if s.Country != "COLOMBIA" {
		t.Errorf("country = %q, want COLOMBIA", s.Country)
	}
	if s.DeliveryMethod != "Bank Transfer" {
		t.Errorf("delivery method = %q, want Bank Transfer", s.DeliveryMethod)
	}
}

func TestStepByStepFlow(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()

	turns := []string{"$200", "USD", "Mary Johnson", "AC987654", "Mexico", "Mobile Wallet"}
	var last string
	for _, turn := range turns {
		last = c.HandleTurn(st, turn)
	}
	if !strings.HasPrefix(last, "Great, I have everything!") {
		t.Fatalf("expected completion summary after final turn, got: %s", last)
	}

	s := state.FromStore(st)
	if !s.Amount.Equal(mustAmount(t, "200")) || s.Currency != "USD" ||
		s.BeneficiaryName != "Mary Johnson" || s.BeneficiaryAccount != "AC987654" ||
		s.Country != "MEXICO" || s.DeliveryMethod != "Mobile Wallet" {
		t.Errorf("final state = %+v", s)
	}
}

func TestIdempotentResubmission(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()

	c.HandleTurn(st, "$200")
	reply := c.HandleTurn(st, "$200")

	if strings.Contains(reply, "updated") {
		t.Errorf("re-submitting the same amount claimed an update: %s", reply)
	}
	if !strings.Contains(reply, "Here's what I have so far") {
		t.Errorf("expected recap for a no-change turn, got: %s", reply)
	}
	s := state.FromStore(st)
	if !s.Amount.Equal(mustAmount(t, "200")) {
		t.Errorf("amount = %s after resubmission, want 200", s.Amount)
	}
}

func TestCorrectionReplacesOnlyTargetField(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()
	(&state.State{
		Amount:             mustAmount(t, "100"),
		BeneficiaryName:    "Bob",
		BeneficiaryAccount: "AC123456",
	}).SaveTo(st)

	reply := c.HandleTurn(st, "Actually, change the amount to $300")
	if !strings.Contains(reply, "I updated the amount to 300") {
		t.Fatalf("expected amount-updated reply, got: %s", reply)
	}

	s := state.FromStore(st)
	if !s.Amount.Equal(mustAmount(t, "300")) {
		t.Errorf("amount = %s, want 300", s.Amount)
	}
	if s.BeneficiaryName != "Bob" {
		t.Errorf("beneficiary name = %q, want Bob untouched", s.BeneficiaryName)
	}
	if s.BeneficiaryAccount != "AC123456" {
		t.Errorf("account = %q, want AC123456 untouched", s.BeneficiaryAccount)
	}
}

func TestCorrectionWithoutValue(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()
	(&state.State{Currency: "USD"}).SaveTo(st)

	reply := c.HandleTurn(st, "change the currency")
	if !strings.Contains(reply, "couldn't extract the new value") {
		t.Fatalf("expected missing-value reply, got: %s", reply)
	}
	if s := state.FromStore(st); s.Currency != "USD" {
		t.Errorf("currency = %q, want USD untouched", s.Currency)
	}
}

func TestCorrectionOfNameKeepsCase(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()
	(&state.State{BeneficiaryName: "Bob"}).SaveTo(st)

	c.HandleTurn(st, "change name to Maria")
	if s := state.FromStore(st); s.BeneficiaryName != "Maria" {
		t.Errorf("beneficiary name = %q, want Maria", s.BeneficiaryName)
	}
}

func TestNameAccountFusion(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()

	c.HandleTurn(st, "Daniela Varela 203933773")

	s := state.FromStore(st)
	if s.BeneficiaryName != "Daniela Varela" {
		t.Errorf("beneficiary name = %q, want Daniela Varela", s.BeneficiaryName)
	}
	if s.BeneficiaryAccount != "ACC-203933773" {
		t.Errorf("account = %q, want ACC-203933773", s.BeneficiaryAccount)
	}
}

func TestUnsupportedDestination(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()

	reply := c.HandleTurn(st, "Send $100 to John AC123456 in Atlantis")
	if !strings.Contains(reply, "Atlantis") {
		t.Fatalf("reply does not name the unsupported destination: %s", reply)
	}
	for _, key := range catalog.Default().SortedCountryKeys() {
		if !strings.Contains(reply, key) {
			t.Errorf("reply does not list supported country %s: %s", key, reply)
		}
	}
	if s := state.FromStore(st); s.Country != "" {
		t.Errorf("country = %q, want unset", s.Country)
	}
}

func TestSingleTokenCountryFallback(t *testing.T) {
	c := newTestCollector()

	t.Run("currency_token_never_treated_as_country", func(t *testing.T) {
		st := state.NewMemoryStore()
		reply := c.HandleTurn(st, "USD")
		if strings.Contains(reply, "not a supported country") {
			t.Fatalf("currency token hit the country fallback: %s", reply)
		}
		if s := state.FromStore(st); s.Currency != "USD" {
			t.Errorf("currency = %q, want USD", s.Currency)
		}
	})

	t.Run("currency_name_never_treated_as_country", func(t *testing.T) {
		st := state.NewMemoryStore()
		reply := c.HandleTurn(st, "lempiras")
		if strings.Contains(reply, "not a supported country") {
			t.Fatalf("currency name hit the country fallback: %s", reply)
		}
		if s := state.FromStore(st); s.Currency != "HNL" {
			t.Errorf("currency = %q, want HNL", s.Currency)
		}
	})
}

func TestAllSupportedCountriesResolve(t *testing.T) {
	tests := []struct {
		mention string
		want    string
	}{
		{mention: "Mexico", want: "MEXICO"},
		{mention: "Honduras", want: "HONDURAS"},
		{mention: "Dominican Republic", want: "REPUBLICA DOMINICANA"},
		{mention: "Nicaragua", want: "NICARAGUA"},
		{mention: "Colombia", want: "COLOMBIA"},
		{mention: "El Salvador", want: "EL SALVADOR"},
		{mention: "Guatemala", want: "GUATEMALA"},
	}
	c := newTestCollector()
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			st := state.NewMemoryStore()
			c.HandleTurn(st, "Send $100 to ACC-111111 in "+tt.mention)
			if s := state.FromStore(st); s.Country != tt.want {
				t.Errorf("country = %q, want %q", s.Country, tt.want)
			}
		})
	}
}

func TestMonotonicAccumulation(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()

	c.HandleTurn(st, "$350")
	c.HandleTurn(st, "cash pickup")
	c.HandleTurn(st, "Guatemala")

	s := state.FromStore(st)
	if !s.Amount.Equal(mustAmount(t, "350")) {
		t.Errorf("amount = %s, want 350 retained across turns", s.Amount)
	}
	if s.DeliveryMethod != "Cash Pickup" {
		t.Errorf("delivery method = %q, want Cash Pickup retained", s.DeliveryMethod)
	}
	if s.Country != "GUATEMALA" {
		t.Errorf("country = %q, want GUATEMALA", s.Country)
	}
}

func TestEmptyTurnAsksFirstQuestion(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()

	reply := c.HandleTurn(st, "hello")
	if reply != "How much would you like to send?" {
		t.Errorf("reply = %q, want the amount question alone", reply)
	}
}

func TestSendMoney(t *testing.T) {
	t.Run("incomplete_state_blocks_send", func(t *testing.T) {
		c := newTestCollector()
		st := state.NewMemoryStore()
		(&state.State{Amount: mustAmount(t, "100"), Currency: "USD"}).SaveTo(st)

		msg, sent := c.SendMoney(st)
		if sent {
			t.Fatal("incomplete transfer was sent")
		}
		for _, missing := range []string{"beneficiary account", "country", "delivery method"} {
			if !strings.Contains(msg, missing) {
				t.Errorf("missing-field list lacks %q: %s", missing, msg)
			}
		}
		if s := state.FromStore(st); !s.HasAmount() || s.Currency != "USD" {
			t.Error("failed send mutated session state")
		}

		// Retryable: a second call behaves identically.
		msg2, sent2 := c.SendMoney(st)
		if sent2 || msg2 != msg {
			t.Error("repeated incomplete send was not idempotent")
		}
	})

	t.Run("complete_state_sends_and_clears", func(t *testing.T) {
		c := newTestCollector()
		c.txnID = func() string { return "TXN123456" }
		st := state.NewMemoryStore()
		(&state.State{
			Amount:             mustAmount(t, "500"),
			Currency:           "COP",
			BeneficiaryAccount: "AC123456",
			BeneficiaryName:    "John Smith",
			Country:            "COLOMBIA",
			DeliveryMethod:     "Bank Transfer",
		}).SaveTo(st)

		msg, sent := c.SendMoney(st)
		if !sent {
			t.Fatalf("complete transfer was not sent: %s", msg)
		}
		for _, want := range []string{"TXN123456", "500 COP", "John Smith (AC123456)", "COLOMBIA", "Bank Transfer"} {
			if !strings.Contains(msg, want) {
				t.Errorf("confirmation lacks %q: %s", want, msg)
			}
		}

		s := state.FromStore(st)
		if s.HasAmount() || s.Currency != "" || s.BeneficiaryAccount != "" ||
			s.BeneficiaryName != "" || s.Country != "" || s.DeliveryMethod != "" {
			t.Errorf("state not cleared after send: %+v", s)
		}
	})
}

func TestSummarySnapshot(t *testing.T) {
	c := newTestCollector()
	st := state.NewMemoryStore()
	(&state.State{Amount: mustAmount(t, "42"), Country: "MEXICO"}).SaveTo(st)

	sum := c.Summary(st)
	if sum[state.KeyAmount] != "42" {
		t.Errorf("summary amount = %v, want \"42\"", sum[state.KeyAmount])
	}
	if sum[state.KeyCountry] != "MEXICO" {
		t.Errorf("summary country = %v, want MEXICO", sum[state.KeyCountry])
	}
	if sum[state.KeyCurrency] != nil {
		t.Errorf("summary currency = %v, want nil", sum[state.KeyCurrency])
	}
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package state tracks a money transfer request as it is assembled across
// conversation turns: the typed slot struct, the session key/value store
// it is persisted in, and the session registry.
package state

import (
	"github.com/shopspring/decimal"
)

// Store keys for the transfer slots. One key per slot; every save writes
// all six so a reader of the raw store always sees the full shape.
const (
	KeyAmount             = "amount"
	KeyCurrency           = "currency"
	KeyBeneficiaryAccount = "beneficiary_account"
	KeyBeneficiaryName    = "beneficiary_name"
	KeyCountry            = "country"
	KeyDeliveryMethod     = "delivery_method"
)

// slotKeys is the canonical slot ordering used for summaries and clears.
var slotKeys = []string{
	KeyAmount, KeyCurrency, KeyBeneficiaryAccount,
	KeyBeneficiaryName, KeyCountry, KeyDeliveryMethod,
}

// State holds the transfer slots collected so far.
//
// A zero Amount means "not collected" — amounts below 1 are rejected at
// extraction time, so zero is never a legitimate collected value. Empty
// strings likewise mean "not collected". The beneficiary account is the
// primary recipient identifier; the name is secondary and optional.
//
// Thread Safety: Not safe for concurrent use. Each request loads its own
// copy from the session store and saves it back.
type State struct {
	Amount             decimal.Decimal
	Currency           string
	BeneficiaryAccount string
	BeneficiaryName    string
	Country            string
	DeliveryMethod     string
}

// HasAmount reports whether an amount has been collected.
func (s *State) HasAmount() bool {
	return !s.Amount.IsZero()
}

// IsComplete reports whether every required slot is filled. The
// beneficiary name is not required; the account alone identifies the
// recipient.
func (s *State) IsComplete() bool {
	return s.HasAmount() &&
		s.Currency != "" &&
		s.BeneficiaryAccount != "" &&
		s.Country != "" &&
		s.DeliveryMethod != ""
}

// Missing returns human-readable labels for the required slots still
// empty, in collection order.
func (s *State) Missing() []string {
	var missing []string
	if !s.HasAmount() {
		missing = append(missing, "amount")
	}
	if s.Currency == "" {
		missing = append(missing, "currency")
	}
	if s.BeneficiaryAccount == "" {
		missing = append(missing, "beneficiary account")
	}
	if s.Country == "" {
		missing = append(missing, "country")
	}
	if s.DeliveryMethod == "" {
		missing = append(missing, "delivery method")
	}
	return missing
}

// Summary returns all six slots keyed by their store keys. Unset string
// slots appear as nil; an unset amount appears as nil too, so callers can
// distinguish "not collected" without knowing the zero-value convention.
func (s *State) Summary() map[string]any {
	out := make(map[string]any, len(slotKeys))
	out[KeyAmount] = nilIfUnset(s.HasAmount(), s.Amount.String())
	out[KeyCurrency] = nilIfUnset(s.Currency != "", s.Currency)
	out[KeyBeneficiaryAccount] = nilIfUnset(s.BeneficiaryAccount != "", s.BeneficiaryAccount)
	out[KeyBeneficiaryName] = nilIfUnset(s.BeneficiaryName != "", s.BeneficiaryName)
	out[KeyCountry] = nilIfUnset(s.Country != "", s.Country)
	out[KeyDeliveryMethod] = nilIfUnset(s.DeliveryMethod != "", s.DeliveryMethod)
	return out
}

func nilIfUnset(set bool, v string) any {
	if !set {
		return nil
	}
	return v
}

// FromStore loads the slot values out of a session store. Missing or
// mistyped entries read as unset rather than erroring; the store is
// session-scoped scratch space, not a database.
func FromStore(st Store) *State {
	var s State
	if v, ok := st.Get(KeyAmount); ok {
		if d, ok := v.(decimal.Decimal); ok {
			s.Amount = d
		}
	}
	s.Currency = getString(st, KeyCurrency)
	s.BeneficiaryAccount = getString(st, KeyBeneficiaryAccount)
	s.BeneficiaryName = getString(st, KeyBeneficiaryName)
	s.Country = getString(st, KeyCountry)
	s.DeliveryMethod = getString(st, KeyDeliveryMethod)
	return &s
}

// SaveTo writes all six slot keys back to the store, unset slots
// included, so the stored shape is always complete.
func (s *State) SaveTo(st Store) {
	if s.HasAmount() {
		st.Set(KeyAmount, s.Amount)
	} else {
		st.Set(KeyAmount, nil)
	}
	setString(st, KeyCurrency, s.Currency)
	setString(st, KeyBeneficiaryAccount, s.BeneficiaryAccount)
	setString(st, KeyBeneficiaryName, s.BeneficiaryName)
	setString(st, KeyCountry, s.Country)
	setString(st, KeyDeliveryMethod, s.DeliveryMethod)
}

func getString(st Store, key string) string {
	if v, ok := st.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func setString(st Store, key, val string) {
	if val == "" {
		st.Set(key, nil)
		return
	}
	st.Set(key, val)
}

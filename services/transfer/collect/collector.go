// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package collect implements the multi-turn slot-filling conversation for
// a money transfer: corrections, per-field extraction with validation,
// merge into session state, and the recap / next-question replies.
package collect

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/corridorlabs/remitagent/services/transfer/catalog"
	"github.com/corridorlabs/remitagent/services/transfer/extract"
	"github.com/corridorlabs/remitagent/services/transfer/state"
)

// Collector drives the slot-filling conversation against a session
// store. One Collector serves all sessions; per-turn state lives in the
// store, never on the Collector.
//
// Thread Safety: Safe for concurrent use across sessions. Concurrent
// turns against the same session race at the read-modify-write level and
// are the caller's responsibility to serialize.
type Collector struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	txnID   func() string
}

// New returns a Collector over the given catalog.
func New(c *catalog.Catalog, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		catalog: c,
		logger:  logger,
		txnID: func() string {
			return fmt.Sprintf("TXN%06d", rand.IntN(900000)+100000)
		},
	}
}

// extracted holds the values pulled out of one turn before they are
// merged into state. Only fields that differ from the current state are
// populated.
type extracted struct {
	amount         decimal.Decimal
	hasAmount      bool
	currency       string
	country        string
	account        string
	name           string
	deliveryMethod string
}

func (e *extracted) empty() bool {
	return !e.hasAmount && e.currency == "" && e.country == "" &&
		e.account == "" && e.name == "" && e.deliveryMethod == ""
}

// HandleTurn processes one user utterance against the session and
// returns the conversational reply.
//
// Description:
//
//	Corrections short-circuit everything else. Otherwise every extractor
//	runs over the input and each value that differs from the current
//	state is staged; a validation failure on currency, country, or
//	delivery method replies with the error immediately, keeping the
//	slots already collected but discarding the rest of the turn. Staged
//	values are then merged and saved, and the reply is either the full
//	confirmation recap (all required slots filled) or a recap of what is
//	known plus the next question.
//
// Inputs:
//   - st: The session store the transfer is being assembled in.
//   - input: Raw user text for this turn.
//
// Outputs:
//   - string: The reply to show the user.
func (c *Collector) HandleTurn(st state.Store, input string) string {
	s := state.FromStore(st)

	if corr, ok := extract.DetectCorrection(input); ok {
		return c.applyCorrection(st, s, corr, input)
	}

	var ex extracted

	if amt, ok := extract.Amount(input); ok && !s.Amount.Equal(amt) {
		ex.amount, ex.hasAmount = amt, true
	}

	cur, curOK := extract.Currency(c.catalog, input)
	if curOK && s.Currency != cur {
		if _, err := c.catalog.ValidateCurrency(cur); err != nil {
			s.SaveTo(st)
			return fmt.Sprintf("I'm sorry, but %s. Please use the expected format: %s. What currency would you like to use?",
				err.Error(), c.catalog.ExpectedFormats()[state.KeyCurrency])
		}
		ex.currency = cur
	}

	ctry, ctryOK := extract.Country(c.catalog, input)
	switch {
	case ctryOK && s.Country != ctry:
		if _, err := c.catalog.ValidateCountry(ctry); err != nil {
			s.SaveTo(st)
			return fmt.Sprintf("%s Which country should the money be sent to?", err.Error())
		}
		ex.country = ctry
	case !ctryOK && s.Country == "" && !curOK:
		if reply, stop := c.checkUnknownDestination(st, s, input); stop {
			return reply
		}
	}

	if acct, ok := extract.AccountNumber(c.catalog, input); ok && s.BeneficiaryAccount != acct {
		// A country key surviving the pre-strip is still not an account.
		if !c.catalog.IsCountryKey(strings.ToUpper(acct)) {
			ex.account = acct
		}
	}

	if name, ok := extract.BeneficiaryName(c.catalog, input); ok && s.BeneficiaryName != name {
		if !isIntentPhrase(name) {
			ex.name = name
		}
	}

	if dm, ok := extract.DeliveryMethod(c.catalog, input); ok && s.DeliveryMethod != dm {
		if _, err := c.catalog.ValidateDeliveryMethod(dm); err != nil {
			s.SaveTo(st)
			return fmt.Sprintf("I'm sorry, but %s. Please use one of the supported methods: %s. How would you like the money to be delivered?",
				err.Error(), c.catalog.ExpectedFormats()[state.KeyDeliveryMethod])
		}
		ex.deliveryMethod = dm
	}

	if ex.empty() {
		if recap := formatCollected(s); recap != "" {
			return recap + "\n\n" + c.nextQuestion(s)
		}
		return c.nextQuestion(s)
	}

	c.merge(s, &ex)
	s.SaveTo(st)

	c.logger.Debug("transfer slots updated",
		"amount_set", ex.hasAmount,
		"currency", ex.currency,
		"country", ex.country,
		"has_account", ex.account != "",
		"has_name", ex.name != "",
		"delivery_method", ex.deliveryMethod,
		"complete", s.IsComplete(),
	)

	if s.IsComplete() {
		return completionSummary(s)
	}
	if recap := formatCollected(s); recap != "" {
		return recap + "\n\n" + c.nextQuestion(s)
	}
	return c.nextQuestion(s)
}

// merge applies staged values to the state.
func (c *Collector) merge(s *state.State, ex *extracted) {
	if ex.hasAmount {
		s.Amount = ex.amount
	}
	if ex.currency != "" {
		s.Currency = ex.currency
	}
	if ex.country != "" {
		s.Country = ex.country
	}
	if ex.account != "" {
		s.BeneficiaryAccount = ex.account
	}
	if ex.name != "" {
		s.BeneficiaryName = ex.name
	}
	if ex.deliveryMethod != "" {
		s.DeliveryMethod = ex.deliveryMethod
	}
}

// applyCorrection re-extracts the corrected field from the correction
// value (or the whole utterance when no value followed the field word)
// and replaces just that slot.
func (c *Collector) applyCorrection(st state.Store, s *state.State, corr extract.Correction, input string) string {
	source := corr.Value
	if source == "" {
		source = input
	}

	var display string
	switch corr.Field {
	case extract.FieldAmount:
		if amt, ok := extract.Amount(source); ok {
			s.Amount = amt
			display = amt.String()
		}
	case extract.FieldCurrency:
		if cur, ok := extract.Currency(c.catalog, source); ok {
			s.Currency = cur
			display = cur
		}
	case extract.FieldCountry:
		if ctry, ok := extract.Country(c.catalog, source); ok {
			s.Country = ctry
			display = ctry
		}
	case extract.FieldBeneficiaryName:
		if name, ok := extract.BeneficiaryName(c.catalog, source); ok {
			s.BeneficiaryName = name
			display = name
		}
	case extract.FieldBeneficiaryAccount:
		if acct, ok := extract.AccountNumber(c.catalog, source); ok {
			s.BeneficiaryAccount = acct
			display = acct
		}
	case extract.FieldDeliveryMethod:
		if dm, ok := extract.DeliveryMethod(c.catalog, source); ok {
			s.DeliveryMethod = dm
			display = dm
		}
	}

	if display == "" {
		return fmt.Sprintf("I understand you want to change the %s, but I couldn't extract the new value.", corr.Field)
	}

	s.SaveTo(st)
	c.logger.Debug("correction applied", "field", corr.Field)
	label := strings.ReplaceAll(corr.Field, "_", " ")
	return fmt.Sprintf("Got it — I updated the %s to %s. %s", label, display, c.nextQuestion(s))
}

// checkUnknownDestination handles a turn that names a destination we do
// not serve. Two shapes are recognized when the country slot is still
// empty and no known country or currency matched:
//
//   - a trailing "in <Word>" phrase with a capitalized word that is not a
//     currency or delivery method ("send $100 to Bob in Atlantis"), and
//   - the original whole-utterance form: a single alphabetic word, after
//     the currency is known, that did not extract as a name.
//
// Both reply with the unsupported-country error; slots already collected
// are saved first so nothing is lost.
func (c *Collector) checkUnknownDestination(st state.Store, s *state.State, input string) (string, bool) {
	if word, ok := extract.DestinationCandidate(input); ok && isCapitalized(word) {
		_, isCur := extract.Currency(c.catalog, word)
		_, isDM := extract.DeliveryMethod(c.catalog, word)
		if !isCur && !isDM {
			if _, err := c.catalog.ValidateCountry(word); err != nil {
				s.SaveTo(st)
				return fmt.Sprintf("%s Which country should the money be sent to?", err.Error()), true
			}
		}
	}

	if s.Currency == "" {
		return "", false
	}
	trimmed := strings.TrimSpace(input)
	upper := strings.ToUpper(trimmed)
	if trimmed == "" || len(strings.Fields(trimmed)) != 1 {
		return "", false
	}
	if _, ok := extract.BeneficiaryName(c.catalog, input); ok {
		return "", false
	}
	if c.catalog.IsCountryKey(upper) || c.catalog.IsCurrencyCode(upper) {
		return "", false
	}
	if strings.ContainsAny(upper, "0123456789") {
		return "", false
	}
	if _, err := c.catalog.ValidateCountry(trimmed); err != nil {
		s.SaveTo(st)
		return fmt.Sprintf("%s Which country should the money be sent to?", err.Error()), true
	}
	return "", false
}

// isIntentPhrase rejects name candidates that are really transfer-intent
// wording. Slightly wider than the extractor's own phrase gate.
func isIntentPhrase(name string) bool {
	lower := strings.ToLower(name)
	phrases := []string{
		"send money", "send money to", "send to", "money to", "want to send",
		"help me send", "i want to", "would like to", "need to send", "to send",
	}
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func isCapitalized(word string) bool {
	return word != "" && word[0] >= 'A' && word[0] <= 'Z'
}

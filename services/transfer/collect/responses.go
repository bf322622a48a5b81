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
	"fmt"
	"strings"

	"github.com/corridorlabs/remitagent/services/transfer/state"
)

// formatCollected renders the slots collected so far as a markdown list,
// or "" when nothing is collected yet. Amount and currency fuse into one
// line once both are known; name and account fuse into one beneficiary
// line.
func formatCollected(s *state.State) string {
	var items []string

	switch {
	case s.HasAmount() && s.Currency != "":
		items = append(items, fmt.Sprintf("**Amount:** %s %s", s.Amount, s.Currency))
	case s.HasAmount():
		items = append(items, fmt.Sprintf("**Amount:** %s", s.Amount))
	}

	name := strings.TrimSpace(s.BeneficiaryName)
	acct := strings.TrimSpace(s.BeneficiaryAccount)
	switch {
	case name != "" && acct != "":
		items = append(items, fmt.Sprintf("**Beneficiary:** %s (Account: %s)", name, acct))
	case name != "":
		items = append(items, fmt.Sprintf("**Beneficiary Name:** %s", name))
	case acct != "":
		items = append(items, fmt.Sprintf("**Beneficiary Account:** %s", acct))
	}

	if s.Country != "" {
		items = append(items, fmt.Sprintf("**Country:** %s", s.Country))
	}
	if s.DeliveryMethod != "" {
		items = append(items, fmt.Sprintf("**Delivery Method:** %s", s.DeliveryMethod))
	}

	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Here's what I have so far:")
	for _, item := range items {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
	return b.String()
}

// nextQuestion asks for the next missing slot, in fixed priority order.
// The account question changes phrasing when a beneficiary name is
// already known.
func (c *Collector) nextQuestion(s *state.State) string {
	formats := c.catalog.ExpectedFormats()

	if !s.HasAmount() {
		return "How much would you like to send?"
	}
	if s.Currency == "" {
		return "What currency would you like to use? (e.g., USD, MXN, COP, HNL, DOP, NIO, GTQ)"
	}
	if s.BeneficiaryAccount == "" {
		if s.BeneficiaryName != "" {
			return fmt.Sprintf("Please provide the account number for %s. Expected format: %s",
				s.BeneficiaryName, formats[state.KeyBeneficiaryAccount])
		}
		return fmt.Sprintf("Who is the recipient? Please provide the beneficiary's name or account number. Account number format: %s",
			formats[state.KeyBeneficiaryAccount])
	}
	if s.Country == "" {
		return fmt.Sprintf("Which country should the money be sent to? Supported: %s",
			strings.Join(c.catalog.SortedCountryKeys(), ", "))
	}
	if s.DeliveryMethod == "" {
		return "How would you like the money to be delivered? (Bank Transfer, Mobile Wallet, Cash Pickup, or Card)"
	}
	return "Is there anything else you'd like to update?"
}

// completionSummary is the reply for the turn that fills the last
// required slot: a full recap plus a prompt to proceed.
func completionSummary(s *state.State) string {
	return fmt.Sprintf(
		"Great, I have everything!\n\n"+
			"**Amount:** %s %s\n"+
			"**Beneficiary:** %s\n"+
			"**Country:** %s\n"+
			"**Delivery Method:** %s\n\n"+
			"Would you like to proceed with the transfer?",
		s.Amount, s.Currency, beneficiaryDisplay(s, "Acct "), s.Country, s.DeliveryMethod,
	)
}

// beneficiaryDisplay renders the recipient as "Name (Acct X)" when a name
// is known, otherwise just the account with the given prefix.
func beneficiaryDisplay(s *state.State, acctPrefix string) string {
	if s.BeneficiaryName != "" {
		return fmt.Sprintf("%s (%s%s)", s.BeneficiaryName, acctPrefix, s.BeneficiaryAccount)
	}
	return acctPrefix + s.BeneficiaryAccount
}

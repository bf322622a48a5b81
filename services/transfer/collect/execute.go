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

// Summary returns the current transfer snapshot for the session: all six
// slot keys, unset slots as nil. Read-only.
func (c *Collector) Summary(st state.Store) map[string]any {
	return state.FromStore(st).Summary()
}

// SendMoney executes the (simulated) transfer for the session.
//
// Description:
//
//	Completeness-gated: with any required slot missing it returns an
//	itemized list of what is missing plus the current partial snapshot
//	and leaves the session untouched, so it can be retried after the
//	gaps are filled. With a complete state it produces a confirmation
//	carrying a fresh transaction id and clears the session.
//
// Inputs:
//   - st: The session store holding the assembled transfer.
//
// Outputs:
//   - string: Confirmation or missing-information message.
//   - bool: True when the transfer was sent.
func (c *Collector) SendMoney(st state.Store) (string, bool) {
	s := state.FromStore(st)

	if !s.IsComplete() {
		return fmt.Sprintf(
			"❌ Cannot send transfer yet. Missing information: %s.\n\n"+
				"Current information collected:\n"+
				"- Amount: %s\n"+
				"- Currency: %s\n"+
				"- Beneficiary Account: %s\n"+
				"- Beneficiary Name: %s\n"+
				"- Country: %s\n"+
				"- Delivery Method: %s\n\n"+
				"Please provide the missing information using collect_transfer_details, then try sending again.",
			strings.Join(s.Missing(), ", "),
			displayOr(s.HasAmount(), s.Amount.String()),
			displayOr(s.Currency != "", s.Currency),
			displayOr(s.BeneficiaryAccount != "", s.BeneficiaryAccount),
			displayOr(s.BeneficiaryName != "", s.BeneficiaryName),
			displayOr(s.Country != "", s.Country),
			displayOr(s.DeliveryMethod != "", s.DeliveryMethod),
		), false
	}

	txn := c.txnID()
	msg := fmt.Sprintf(
		"✅ ✅ ✅ Transfer Successful!\n\n"+
			"**Transaction ID:** %s\n"+
			"**Amount Sent:** %s %s\n"+
			"**Recipient:** %s\n"+
			"**Destination:** %s\n"+
			"**Delivery Method:** %s\n\n"+
			"Your money has been sent successfully! The recipient should receive it within 1-3 business days "+
			"depending on the delivery method.\n\n"+
			"Thank you for using our service!",
		txn, s.Amount, s.Currency, beneficiaryDisplay(s, ""), s.Country, s.DeliveryMethod,
	)

	st.Clear()
	c.logger.Info("transfer sent",
		"transaction_id", txn,
		"currency", s.Currency,
		"country", s.Country,
		"delivery_method", s.DeliveryMethod,
	)
	return msg, true
}

func displayOr(set bool, v string) string {
	if !set {
		return "Not provided"
	}
	return v
}

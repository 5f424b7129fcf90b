// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Payload is the complete document one device holds for one user: every
// collection and preference the application keeps locally, bundled under
// its well-known field names. A push replaces the remote payload with this
// document wholesale; a pull replaces the local copy the same way. The
// sync layer treats the document as opaque except for the two tracked
// arrays (Transactions, Investments) which are counted and compared.
type Payload struct {
	// Transactions is the first tracked array. Its length is reported in
	// snapshot metadata and conflict prompts.
	Transactions []Transaction `json:"transactions,omitempty"`

	// Investments is the second tracked array.
	Investments []Investment `json:"investments,omitempty"`

	// DashboardCards is the user's dashboard layout, passed through
	// unchanged. The sync layer never looks inside.
	DashboardCards json.RawMessage `json:"dashboard_cards,omitempty"`

	// Locale is the UI locale, e.g. "pt-BR".
	Locale string `json:"locale,omitempty"`

	// Currency is the display currency code, e.g. "BRL".
	Currency string `json:"currency,omitempty"`

	// ExchangeRates is the cached currency conversion table.
	ExchangeRates map[string]decimal.Decimal `json:"exchange_rates,omitempty"`

	// CustomExpenseCategories are user-created expense categories.
	CustomExpenseCategories []Category `json:"custom_expense_categories,omitempty"`

	// CustomIncomeCategories are user-created income categories.
	CustomIncomeCategories []Category `json:"custom_income_categories,omitempty"`

	// CategoryTranslations maps built-in category names to user overrides.
	CategoryTranslations map[string]string `json:"category_translations,omitempty"`

	// HiddenExpenseCategories lists built-in expense categories the user hid.
	HiddenExpenseCategories []string `json:"hidden_expense_categories,omitempty"`

	// HiddenIncomeCategories lists built-in income categories the user hid.
	HiddenIncomeCategories []string `json:"hidden_income_categories,omitempty"`

	// DailyLimitValue is the optional daily spending limit.
	DailyLimitValue *decimal.Decimal `json:"daily_limit_value,omitempty"`
}

// ParsePayload decodes raw JSON into a Payload, rejecting fields that are
// not part of the schema. Devices only ever produce known fields, so an
// unknown field means a malformed or incompatible client.
func ParsePayload(raw []byte) (*Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	return &p, nil
}

// TransactionsCount returns the length of the transactions array.
// A nil payload counts as zero.
func (p *Payload) TransactionsCount() int {
	if p == nil {
		return 0
	}
	return len(p.Transactions)
}

// InvestmentsCount returns the length of the investments array.
// A nil payload counts as zero.
func (p *Payload) InvestmentsCount() int {
	if p == nil {
		return 0
	}
	return len(p.Investments)
}

// HasTrackedData reports whether either tracked array is non-empty.
// Payloads with no tracked data never participate in conflict resolution.
func (p *Payload) HasTrackedData() bool {
	return p.TransactionsCount() > 0 || p.InvestmentsCount() > 0
}

// TrackedEqual reports whether the tracked arrays of two payloads
// serialize to identical bytes. It is the cheap equality the coordinator
// uses to tell "remote echoed what we already have" from a real change.
func (p *Payload) TrackedEqual(other *Payload) bool {
	if p == nil || other == nil {
		return p.TransactionsCount() == other.TransactionsCount() &&
			p.InvestmentsCount() == other.InvestmentsCount()
	}
	return bytes.Equal(marshalTracked(p.Transactions), marshalTracked(other.Transactions)) &&
		bytes.Equal(marshalTracked(p.Investments), marshalTracked(other.Investments))
}

func marshalTracked(v any) []byte {
	// json.Marshal over a slice of concrete structs is deterministic.
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

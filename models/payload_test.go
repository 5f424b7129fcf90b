// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id int64, category string, amount int64) Transaction {
	return Transaction{
		ID:       id,
		Type:     TransactionExpense,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Date:     "2026-08-01",
	}
}

// ── ParsePayload ─────────────────────────────────────────────────────────────

func TestParsePayload(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		raw := []byte(`{
			"transactions": [{"id": 1, "type": "expense", "category": "food", "amount": "12.5", "date": "2026-08-01"}],
			"investments": [{"id": 1, "nome": "CDB", "valor_inicial": "1000", "percentual_cdi": "102", "data_inicio": "2026-01-01"}],
			"dashboard_cards": [{"kind": "balance"}],
			"locale": "pt-BR",
			"currency": "BRL",
			"category_translations": {"groceries": "mercado"},
			"hidden_expense_categories": ["gifts"],
			"daily_limit_value": "150"
		}`)

		p, err := ParsePayload(raw)
		require.NoError(t, err)

		assert.Equal(t, 1, p.TransactionsCount())
		assert.Equal(t, 1, p.InvestmentsCount())
		assert.Equal(t, "CDB", p.Investments[0].Name)
		assert.Equal(t, "pt-BR", p.Locale)
		assert.Equal(t, "mercado", p.CategoryTranslations["groceries"])
		assert.JSONEq(t, `[{"kind": "balance"}]`, string(p.DashboardCards))
		require.NotNil(t, p.DailyLimitValue)
		assert.Equal(t, "150", p.DailyLimitValue.String())
	})

	t.Run("empty object", func(t *testing.T) {
		p, err := ParsePayload([]byte(`{}`))
		require.NoError(t, err)
		assert.False(t, p.HasTrackedData())
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := ParsePayload([]byte(`{"locale": "pt-BR", "not_in_schema": 1}`))
		require.Error(t, err)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := ParsePayload([]byte(`{"locale":`))
		require.Error(t, err)
	})
}

// ── Counts / HasTrackedData ──────────────────────────────────────────────────

func TestPayloadCounts(t *testing.T) {
	var nilPayload *Payload
	assert.Equal(t, 0, nilPayload.TransactionsCount())
	assert.Equal(t, 0, nilPayload.InvestmentsCount())

	p := &Payload{
		Transactions: []Transaction{tx(1, "food", 10), tx(2, "rent", 900)},
		Investments:  []Investment{{ID: 1, Name: "CDB"}},
	}
	assert.Equal(t, 2, p.TransactionsCount())
	assert.Equal(t, 1, p.InvestmentsCount())
	assert.True(t, p.HasTrackedData())

	empty := &Payload{Locale: "pt-BR", Currency: "BRL"}
	assert.False(t, empty.HasTrackedData(), "настройки без записей не считаются данными")
}

// ── TrackedEqual ─────────────────────────────────────────────────────────────

func TestPayloadTrackedEqual(t *testing.T) {
	t.Run("same records", func(t *testing.T) {
		a := &Payload{Transactions: []Transaction{tx(1, "food", 10)}}
		b := &Payload{Transactions: []Transaction{tx(1, "food", 10)}}
		assert.True(t, a.TrackedEqual(b))
	})

	t.Run("untracked fields are ignored", func(t *testing.T) {
		a := &Payload{Transactions: []Transaction{tx(1, "food", 10)}, Locale: "pt-BR"}
		b := &Payload{Transactions: []Transaction{tx(1, "food", 10)}, Locale: "en-US", Currency: "USD"}
		assert.True(t, a.TrackedEqual(b))
	})

	t.Run("different amounts", func(t *testing.T) {
		a := &Payload{Transactions: []Transaction{tx(1, "food", 10)}}
		b := &Payload{Transactions: []Transaction{tx(1, "food", 11)}}
		assert.False(t, a.TrackedEqual(b))
	})

	t.Run("different order", func(t *testing.T) {
		a := &Payload{Transactions: []Transaction{tx(1, "food", 10), tx(2, "rent", 900)}}
		b := &Payload{Transactions: []Transaction{tx(2, "rent", 900), tx(1, "food", 10)}}
		assert.False(t, a.TrackedEqual(b))
	})

	t.Run("nil payloads", func(t *testing.T) {
		var a, b *Payload
		assert.True(t, a.TrackedEqual(b))

		c := &Payload{Transactions: []Transaction{tx(1, "food", 10)}}
		assert.False(t, a.TrackedEqual(c))
		assert.False(t, c.TrackedEqual(a))

		empty := &Payload{}
		assert.True(t, a.TrackedEqual(empty))
	})
}

// ── Snapshot keys ────────────────────────────────────────────────────────────

func TestSnapshotKey(t *testing.T) {
	raw := []byte(`{"savedAt": "2026-08-30T10:00:00.123456789Z", "transactionsCount": 2, "investmentsCount": 1, "data": {}}`)

	var s Snapshot
	require.NoError(t, json.Unmarshal(raw, &s))

	// ключ — нормализованная RFC3339Nano строка в UTC
	assert.Equal(t, "2026-08-30T10:00:00.123456789Z", s.Key())
	assert.Equal(t, s.Key(), s.Info().Key())

	info := s.Info()
	assert.Equal(t, 2, info.TransactionsCount)
	assert.Equal(t, 1, info.InvestmentsCount)
}

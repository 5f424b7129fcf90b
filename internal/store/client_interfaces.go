package store

import (
	"context"

	"github.com/MKhiriev/go-money-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// WriteOrigin tags every local-store write with where it came from, so
// the sync coordinator can tell a user's edit from its own application of
// a pulled payload and never re-push what it just pulled.
type WriteOrigin int

const (
	// OriginLocalEdit marks a write performed by the UI / domain layer.
	OriginLocalEdit WriteOrigin = iota

	// OriginPull marks a write performed by the coordinator applying a
	// fetched remote payload.
	OriginPull
)

// Well-known local store keys. The set mirrors the document fields that
// make up a payload; every key holds a JSON-serialized value.
const (
	KeyTransactions            = "finance_transactions"
	KeyInvestments             = "finance_investments"
	KeyDashboardCards          = "dashboard_cards"
	KeyLocale                  = "app_locale"
	KeyCurrency                = "app_currency"
	KeyExchangeRates           = "exchange_rates"
	KeyCustomExpenseCategories = "custom_expense_categories"
	KeyCustomIncomeCategories  = "custom_income_categories"
	KeyCategoryTranslations    = "category_translations"
	KeyHiddenExpenseCategories = "hidden_expense_categories"
	KeyHiddenIncomeCategories  = "hidden_income_categories"
	KeyDailyLimitValue         = "daily-limit-value"

	// KeySessionToken holds the cached identity token so restarts stay
	// signed in. Never part of a payload.
	KeySessionToken = "session_token"
)

// ChangeListener observes local store writes. origin distinguishes UI
// edits from pull-applied writes.
type ChangeListener func(key string, origin WriteOrigin)

// LocalStorage is the device-scoped canonical working copy of the user's
// data: a synchronous key-value store with origin-tagged change
// notifications.
type LocalStorage interface {
	// Get returns the raw value under key, or [ErrLocalKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key and notifies subscribers with origin.
	Set(ctx context.Context, key, value string, origin WriteOrigin) error

	// Delete removes key. Subscribers are notified with origin.
	Delete(ctx context.Context, key string, origin WriteOrigin) error

	// Subscribe registers a change listener and returns a function that
	// removes it.
	Subscribe(listener ChangeListener) (unsubscribe func())

	// BuildPayload assembles the full payload document from the
	// well-known keys. Missing keys become empty fields.
	BuildPayload(ctx context.Context) (*models.Payload, error)

	// ApplyPayload writes every present payload field to its well-known
	// key. Each write is notified with the given origin.
	ApplyPayload(ctx context.Context, payload *models.Payload, origin WriteOrigin) error

	// Close releases the underlying database handle.
	Close() error
}

// ClientStorages aggregates all client-side storage backends.
type ClientStorages struct {
	LocalStorage LocalStorage
}

package models

import "github.com/shopspring/decimal"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TransactionIncome marks a transaction that increases the balance.
	TransactionIncome TransactionType = "income"

	// TransactionExpense marks a transaction that decreases the balance.
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single income or expense record entered on a device.
// The sync layer never interprets transactions beyond counting them and
// comparing their serialized form; the fields exist so the payload schema
// is explicit at the boundary instead of an untyped bag.
type Transaction struct {
	// ID is the client-assigned identifier of the record.
	ID int64 `json:"id"`

	// Type is either "income" or "expense".
	Type TransactionType `json:"type"`

	// Category is the user-visible category name the record belongs to.
	Category string `json:"category"`

	// Amount is the monetary value of the transaction.
	Amount decimal.Decimal `json:"amount"`

	// Description is an optional free-form note.
	Description string `json:"description,omitempty"`

	// Date is the ISO 8601 date the transaction happened on.
	Date string `json:"date"`
}

// Investment is an interest-bearing position tracked by the application.
// JSON field names follow the document format the devices already store.
type Investment struct {
	// ID is the client-assigned identifier of the record.
	ID int64 `json:"id"`

	// Name is the user-visible name of the investment.
	Name string `json:"nome"`

	// InitialAmount is the principal at the start date.
	InitialAmount decimal.Decimal `json:"valor_inicial"`

	// CDIPercent is the yield as a percentage of the CDI reference rate.
	CDIPercent decimal.Decimal `json:"percentual_cdi"`

	// StartDate is the ISO 8601 date the position was opened.
	StartDate string `json:"data_inicio"`
}

// Category is a user-defined spending or income category.
type Category struct {
	// Name is the unique category name.
	Name string `json:"name"`

	// Icon is an opaque icon reference rendered by the UI.
	Icon string `json:"icon"`

	// Color is an opaque style token rendered by the UI.
	Color string `json:"color"`
}

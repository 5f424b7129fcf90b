package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/models"
)

// localSQLiteStorage implements [LocalStorage] over a single-table SQLite
// database on the device. Writes are synchronous; change listeners are
// invoked on the caller's goroutine after a successful write, carrying
// the write's origin.
type localSQLiteStorage struct {
	db     *sql.DB
	logger *logger.Logger

	mu           sync.RWMutex
	listeners    map[int]ChangeListener
	nextListener int
}

// NewLocalStorage opens (creating if necessary) the device-local store.
// An empty DSN falls back to ":memory:".
func NewLocalStorage(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (LocalStorage, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewLocalStorage").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file")
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewLocalStorage").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to local DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewLocalStorage").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		log.Err(err).Str("func", "NewLocalStorage").Msg("error creating kv table")
		return nil, fmt.Errorf("error creating kv table: %w", err)
	}
	log.Debug().Str("func", "NewLocalStorage").Msg("connected to local store successfully")

	return &localSQLiteStorage{
		db:        conn,
		logger:    log,
		listeners: make(map[int]ChangeListener),
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// Get implements [LocalStorage].
func (s *localSQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set implements [LocalStorage].
func (s *localSQLiteStorage) Set(ctx context.Context, key, value string, origin WriteOrigin) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	s.notify(key, origin)
	return nil
}

// Delete implements [LocalStorage].
func (s *localSQLiteStorage) Delete(ctx context.Context, key string, origin WriteOrigin) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	s.notify(key, origin)
	return nil
}

// Subscribe implements [LocalStorage].
func (s *localSQLiteStorage) Subscribe(listener ChangeListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *localSQLiteStorage) notify(key string, origin WriteOrigin) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, listener := range s.listeners {
		listener(key, origin)
	}
}

// BuildPayload implements [LocalStorage]. Keys that were never written
// become empty fields with the application defaults for locale and
// currency, matching what a fresh device would push.
func (s *localSQLiteStorage) BuildPayload(ctx context.Context) (*models.Payload, error) {
	payload := &models.Payload{
		Locale:   "pt-BR",
		Currency: "BRL",
	}

	if err := s.getJSON(ctx, KeyTransactions, &payload.Transactions); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyInvestments, &payload.Investments); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyDashboardCards, &payload.DashboardCards); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyExchangeRates, &payload.ExchangeRates); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyCustomExpenseCategories, &payload.CustomExpenseCategories); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyCustomIncomeCategories, &payload.CustomIncomeCategories); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyCategoryTranslations, &payload.CategoryTranslations); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyHiddenExpenseCategories, &payload.HiddenExpenseCategories); err != nil {
		return nil, err
	}
	if err := s.getJSON(ctx, KeyHiddenIncomeCategories, &payload.HiddenIncomeCategories); err != nil {
		return nil, err
	}

	if locale, err := s.Get(ctx, KeyLocale); err == nil && locale != "" {
		payload.Locale = locale
	}
	if currency, err := s.Get(ctx, KeyCurrency); err == nil && currency != "" {
		payload.Currency = currency
	}
	if limit, err := s.Get(ctx, KeyDailyLimitValue); err == nil && limit != "" {
		value, perr := decimal.NewFromString(limit)
		if perr == nil {
			payload.DailyLimitValue = &value
		}
	}

	return payload, nil
}

// ApplyPayload implements [LocalStorage]. Only fields present in the
// payload are written, so a partial remote document never erases local
// keys it does not mention.
func (s *localSQLiteStorage) ApplyPayload(ctx context.Context, payload *models.Payload, origin WriteOrigin) error {
	if payload == nil {
		return nil
	}

	if payload.Transactions != nil {
		if err := s.setJSON(ctx, KeyTransactions, payload.Transactions, origin); err != nil {
			return err
		}
	}
	if payload.Investments != nil {
		if err := s.setJSON(ctx, KeyInvestments, payload.Investments, origin); err != nil {
			return err
		}
	}
	if payload.DashboardCards != nil {
		if err := s.Set(ctx, KeyDashboardCards, string(payload.DashboardCards), origin); err != nil {
			return err
		}
	}
	if payload.Locale != "" {
		if err := s.Set(ctx, KeyLocale, payload.Locale, origin); err != nil {
			return err
		}
	}
	if payload.Currency != "" {
		if err := s.Set(ctx, KeyCurrency, payload.Currency, origin); err != nil {
			return err
		}
	}
	if payload.ExchangeRates != nil {
		if err := s.setJSON(ctx, KeyExchangeRates, payload.ExchangeRates, origin); err != nil {
			return err
		}
	}
	if payload.CustomExpenseCategories != nil {
		if err := s.setJSON(ctx, KeyCustomExpenseCategories, payload.CustomExpenseCategories, origin); err != nil {
			return err
		}
	}
	if payload.CustomIncomeCategories != nil {
		if err := s.setJSON(ctx, KeyCustomIncomeCategories, payload.CustomIncomeCategories, origin); err != nil {
			return err
		}
	}
	if payload.CategoryTranslations != nil {
		if err := s.setJSON(ctx, KeyCategoryTranslations, payload.CategoryTranslations, origin); err != nil {
			return err
		}
	}
	if payload.HiddenExpenseCategories != nil {
		if err := s.setJSON(ctx, KeyHiddenExpenseCategories, payload.HiddenExpenseCategories, origin); err != nil {
			return err
		}
	}
	if payload.HiddenIncomeCategories != nil {
		if err := s.setJSON(ctx, KeyHiddenIncomeCategories, payload.HiddenIncomeCategories, origin); err != nil {
			return err
		}
	}
	if payload.DailyLimitValue != nil {
		if err := s.Set(ctx, KeyDailyLimitValue, payload.DailyLimitValue.String(), origin); err != nil {
			return err
		}
	}

	return nil
}

// Close implements [LocalStorage].
func (s *localSQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *localSQLiteStorage) getJSON(ctx context.Context, key string, dst any) error {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrLocalKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: key %s: %w", ErrDecodingDocument, key, err)
	}
	return nil
}

func (s *localSQLiteStorage) setJSON(ctx context.Context, key string, value any, origin WriteOrigin) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %s: %w", ErrEncodingDocument, key, err)
	}
	return s.Set(ctx, key, string(raw), origin)
}

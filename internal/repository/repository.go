package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

// Record keys. Four independent records make up the whole persisted state.
const (
	KeyCart        = "cart"
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyOrders      = "orders"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrCorruptRecord  = errors.New("corrupt record")
)

// Store is a pure serialization boundary: named JSON records in a durable
// local key-value area. No business rules live here.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Put(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// A single local writer owns the store file.
	db.SetMaxOpenConns(1)

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Get unmarshals the record stored under key into dest. A missing record
// yields ErrRecordNotFound; malformed JSON yields an error wrapping
// ErrCorruptRecord so callers can substitute a safe default.
func (r *Repository) Get(ctx context.Context, key string, dest any) error {
	query := `SELECT value FROM records WHERE key = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("query record %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal record %q: %w", key, ErrCorruptRecord)
	}

	return nil
}

func (r *Repository) Put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}

	query := `INSERT INTO records (key, value) VALUES ($1, $2)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := r.db.ExecContext(ctx, query, key, raw); err != nil {
		return fmt.Errorf("upsert record %q: %w", key, err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM records WHERE key = $1`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}

	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

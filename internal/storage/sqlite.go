package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/dbx"
	"github.com/khanhtv/traincrew/internal/storage/migrations"
)

// SQLiteStorage implements Storage over a DBTX (either *sql.DB or *sql.Tx)
// with a fixed byte quota on the sum of stored values.
type SQLiteStorage struct {
	db    dbx.DBTX
	quota int64
}

// NewSQLiteStorage returns storage bound to the given DBTX. quota <= 0
// disables quota enforcement.
func NewSQLiteStorage(db dbx.DBTX, quota int64) *SQLiteStorage {
	return &SQLiteStorage{db: db, quota: quota}
}

// Open opens the sqlite database at dsn and applies the schema migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, bool, error) {
	query := `select value from namespaces where key=?`
	row := s.db.QueryRowContext(ctx, query, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read namespace %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts a namespace value. The quota check and the write run in a
// single transaction when a full database handle is available.
func (s *SQLiteStorage) Set(ctx context.Context, key string, value string) error {
	if db, ok := s.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return s.setOn(ctx, tx, key, value)
		})
	}
	return s.setOn(ctx, s.db, key, value)
}

func (s *SQLiteStorage) setOn(ctx context.Context, db dbx.DBTX, key string, value string) error {
	if s.quota > 0 {
		used, err := s.usedBytesOn(ctx, db, key)
		if err != nil {
			return err
		}
		if used+int64(len(value)) > s.quota {
			return fmt.Errorf("%w: namespace %s needs %d bytes, %d available",
				common.ErrQuotaExceeded, key, len(value), s.quota-used)
		}
	}

	query := ` INSERT INTO namespaces (key, value)
			values (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert namespace %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	query := `delete from namespaces where key=?`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete namespace %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) UsedBytes(ctx context.Context) (int64, error) {
	return s.usedBytesOn(ctx, s.db, "")
}

// usedBytesOn sums stored value bytes, leaving out the key about to be
// overwritten so quota accounting charges only the replacement value.
func (s *SQLiteStorage) usedBytesOn(ctx context.Context, db dbx.DBTX, key string) (int64, error) {
	query := `select coalesce(sum(length(cast(value as blob))), 0) from namespaces where key != ?`
	row := db.QueryRowContext(ctx, query, key)

	var used int64
	if err := row.Scan(&used); err != nil {
		return 0, fmt.Errorf("failed to sum namespace sizes: %w", err)
	}
	return used, nil
}

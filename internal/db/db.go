package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sbilibin2017/contact-form/internal/logger"
)

// Driver names registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

func init() {
	// sqlx does not know modernc's driver name; teach Rebind to keep '?' placeholders.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Options selects and locates the store.
type Options struct {
	// DataDir holds the SQLite file. Created with parents if missing.
	DataDir string

	// FileName is the SQLite file name inside DataDir.
	FileName string

	// DatabaseURL, when non-empty, is a Postgres DSN used instead of the SQLite file.
	DatabaseURL string
}

// Path returns the SQLite file location.
func (o Options) Path() string {
	return filepath.Join(o.DataDir, o.FileName)
}

// Open connects to the configured store and makes sure the users table exists.
// Every failure here is fatal for the caller: no handler can work without storage.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	if opts.DatabaseURL != "" {
		db, err = openPostgres(ctx, opts.DatabaseURL)
	} else {
		db, err = openSQLite(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return db, nil
}

func openSQLite(ctx context.Context, opts Options) (*sqlx.DB, error) {
	if err := os.MkdirAll(opts.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	path := opts.Path()
	db, err := sqlx.ConnectContext(ctx, DriverSQLite, path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Log.Infof("Connected to database at %s", path)
	return db, nil
}

func openPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger.Log.Info("Connected to database at postgres")
	return db, nil
}

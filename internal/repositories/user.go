package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/models"
)

// UserWriteRepository inserts submissions.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts one row and returns the id assigned by storage.
// created_at is left to the column default.
func (r *UserWriteRepository) Save(ctx context.Context, name, email string, message *string) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO users (name, email, message)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.GetContext(ctx, &id, query, name, email, message)

	// submitter fields stay out of the log
	logger.Log.Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"has_message", message != nil,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ListRecent returns at most limit rows, newest first. Rows sharing a created_at
// value come back in descending id order.
func (r *UserReadRepository) ListRecent(ctx context.Context, limit int) ([]models.UserDB, error) {
	query := r.db.Rebind(`
		SELECT id, name, email, message, created_at
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`)

	users := make([]models.UserDB, 0)
	err := r.db.SelectContext(ctx, &users, query, limit)

	logger.Log.Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Ping reports whether the store is reachable.
func (r *UserReadRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

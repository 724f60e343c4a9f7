package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/contact-form/internal/db"
	"github.com/sbilibin2017/contact-form/internal/logger"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.Options{DataDir: t.TempDir(), FileName: "users.db"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func setupMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func strPtr(s string) *string { return &s }

func TestUserWriteRepository_Save(t *testing.T) {
	conn := setupSQLite(t)
	repo := NewUserWriteRepository(conn)
	ctx := context.Background()

	id1, err := repo.Save(ctx, "Alice", "a@x.com", nil)
	require.NoError(t, err)
	id2, err := repo.Save(ctx, "Bob", "b@x.com", strPtr("hi"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Greater(t, id2, id1)

	var msg *string
	require.NoError(t, conn.Get(&msg, "SELECT message FROM users WHERE id = ?", id1))
	assert.Nil(t, msg)
	require.NoError(t, conn.Get(&msg, "SELECT message FROM users WHERE id = ?", id2))
	require.NotNil(t, msg)
	assert.Equal(t, "hi", *msg)
}

func TestUserWriteRepository_Save_Mock(t *testing.T) {
	tests := []struct {
		name    string
		message *string
		setup   func(m sqlmock.Sqlmock)
		wantID  int64
		wantErr string
	}{
		{
			name:    "returns assigned id",
			message: strPtr("hello"),
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").
					WithArgs("Alice", "a@x.com", "hello").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
			},
			wantID: 7,
		},
		{
			name: "nil message is stored as NULL",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").
					WithArgs("Alice", "a@x.com", nil).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			wantID: 1,
		},
		{
			name: "insert failure",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").
					WillReturnError(errors.New("database is locked"))
			},
			wantErr: "database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := setupMock(t)
			tt.setup(mock)

			id, err := NewUserWriteRepository(conn).Save(context.Background(), "Alice", "a@x.com", tt.message)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_Save_LogsNoSubmitterFields(t *testing.T) {
	repo := NewUserWriteRepository(setupSQLite(t))

	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	id, err := repo.Save(context.Background(), "Alice Secret", "alice@private.example", strPtr("call me at 555-0100"))
	require.NoError(t, err)

	entries := logs.FilterMessage("query").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, id, fields["result"])
	assert.Equal(t, true, fields["has_message"])

	for _, e := range logs.All() {
		dump := fmt.Sprint(e.Message, e.ContextMap())
		assert.NotContains(t, dump, "Alice Secret")
		assert.NotContains(t, dump, "alice@private.example")
		assert.NotContains(t, dump, "555-0100")
	}
}

func TestUserReadRepository_ListRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("NewestFirst", func(t *testing.T) {
		conn := setupSQLite(t)
		conn.MustExec(`INSERT INTO users (name, email, created_at) VALUES ('A', 'a@x.com', '2024-01-01 10:00:00')`)
		conn.MustExec(`INSERT INTO users (name, email, created_at) VALUES ('B', 'b@x.com', '2024-01-01 10:00:01')`)
		conn.MustExec(`INSERT INTO users (name, email, created_at) VALUES ('C', 'c@x.com', '2024-01-01 10:00:02')`)

		users, err := NewUserReadRepository(conn).ListRecent(ctx, 100)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, []string{"C", "B", "A"}, []string{users[0].Name, users[1].Name, users[2].Name})
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 2, 0, time.UTC), users[0].CreatedAt.UTC())
	})

	t.Run("SameSecondUsesInsertionOrder", func(t *testing.T) {
		conn := setupSQLite(t)
		writer := NewUserWriteRepository(conn)
		for _, name := range []string{"A", "B", "C"} {
			_, err := writer.Save(ctx, name, name+"@x.com", nil)
			require.NoError(t, err)
		}

		users, err := NewUserReadRepository(conn).ListRecent(ctx, 100)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "C", users[0].Name)
		assert.Equal(t, "A", users[2].Name)
		assert.Nil(t, users[2].Message)
		assert.False(t, users[2].CreatedAt.IsZero())
	})

	t.Run("RespectsLimit", func(t *testing.T) {
		conn := setupSQLite(t)
		writer := NewUserWriteRepository(conn)
		for i := 0; i < 105; i++ {
			_, err := writer.Save(ctx, fmt.Sprintf("user%d", i), "u@x.com", nil)
			require.NoError(t, err)
		}

		users, err := NewUserReadRepository(conn).ListRecent(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, users, 100)
		assert.Equal(t, "user104", users[0].Name)
	})

	t.Run("Empty", func(t *testing.T) {
		users, err := NewUserReadRepository(setupSQLite(t)).ListRecent(ctx, 100)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("QueryError", func(t *testing.T) {
		conn, mock := setupMock(t)
		mock.ExpectQuery("SELECT id, name, email, message, created_at FROM users").
			WithArgs(100).
			WillReturnError(errors.New("no such table: users"))

		users, err := NewUserReadRepository(conn).ListRecent(ctx, 100)
		assert.Error(t, err)
		assert.Nil(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserReadRepository_Ping(t *testing.T) {
	conn := setupSQLite(t)
	repo := NewUserReadRepository(conn)

	assert.NoError(t, repo.Ping(context.Background()))

	conn.Close()
	assert.Error(t, repo.Ping(context.Background()))
}

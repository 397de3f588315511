package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
)

func TestSQLAccountStore_CreateFindExists(t *testing.T) {
	ctx := context.Background()
	s := NewSQLAccountStore(newTestDB(t))

	exists, err := s.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Create(ctx, "alice", "hash-1"))

	exists, err = s.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	acc, err := s.Find(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Account{Username: "alice", PasswordHash: "hash-1"}, acc)
}

func TestSQLAccountStore_UsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := NewSQLAccountStore(newTestDB(t))

	require.NoError(t, s.Create(ctx, "alice", "h"))
	require.NoError(t, s.Create(ctx, "Alice", "h"))

	_, err := s.Find(ctx, "ALICE")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSQLAccountStore_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := NewSQLAccountStore(db)

	require.NoError(t, s.Create(ctx, "bob", "first"))
	err := s.Create(ctx, "bob", "second")
	assert.ErrorIs(t, err, models.ErrConflict)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE username = 'bob'`).Scan(&n))
	assert.Equal(t, 1, n)

	acc, err := s.Find(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "first", acc.PasswordHash)
}

func TestSQLAccountStore_ConcurrentCreateSameUsername(t *testing.T) {
	ctx := context.Background()
	s := NewSQLAccountStore(newTestDB(t))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
		others    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Create(ctx, "carol", fmt.Sprintf("hash-%d", i))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, models.ErrConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)
}

func TestSQLAccountStore_FindNotFound(t *testing.T) {
	s := NewSQLAccountStore(newTestDB(t))

	_, err := s.Find(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSQLAccountStore_Create_PgUniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	s := NewSQLAccountStore(db)

	mock.ExpectExec(`INSERT INTO accounts \(username, password\) VALUES \(\$1, \$2\)`).
		WithArgs("dave", "h").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := s.Create(context.Background(), "dave", "h")
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAccountStore_DBErrors(t *testing.T) {
	db, mock := newMock(t)
	s := NewSQLAccountStore(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO accounts`).WillReturnError(errors.New("db down"))
	err := s.Create(ctx, "erin", "h")
	assert.ErrorContains(t, err, "db error: db down")
	assert.NotErrorIs(t, err, models.ErrConflict)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("erin").WillReturnError(errors.New("db down"))
	_, err = s.Exists(ctx, "erin")
	assert.ErrorContains(t, err, "db error: db down")

	mock.ExpectQuery(`SELECT username, password FROM accounts WHERE username = \$1`).
		WithArgs("erin").
		WillReturnError(errors.New("db down"))
	_, err = s.Find(ctx, "erin")
	assert.ErrorContains(t, err, "db error: db down")
	assert.NotErrorIs(t, err, models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAccountStore_FindScansRow(t *testing.T) {
	db, mock := newMock(t)
	s := NewSQLAccountStore(db)

	mock.ExpectQuery(`SELECT username, password FROM accounts WHERE username = \$1`).
		WithArgs("frank").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password"}).AddRow("frank", "$2a$10$x"))

	acc, err := s.Find(context.Background(), "frank")
	require.NoError(t, err)
	assert.Equal(t, "frank", acc.Username)
	assert.Equal(t, "$2a$10$x", acc.PasswordHash)
}

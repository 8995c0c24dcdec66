package store

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usageTableSQLite = `CREATE TABLE usage_daily (
	user_id INTEGER NOT NULL,
	date    TEXT    NOT NULL,
	count   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, date)
);`

func newSQLiteUsageRepo(t *testing.T) UsageRepository {
	t.Helper()

	conn, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(usageTableSQLite)
	require.NoError(t, err)

	return NewUsageRepository(NewDB(conn, sq.Question, logger.Nop()), logger.Nop())
}

// ── sqlmock ───────────────────────────────────────────────────────────────────

func TestUsageRepository_Increment_ReturnsCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUsageRepository(NewDB(db, sq.Dollar, logger.Nop()), logger.Nop())

	mock.ExpectQuery(`INSERT INTO usage_daily .* ON CONFLICT \(user_id, date\) DO UPDATE SET count = usage_daily.count \+ 1 RETURNING count`).
		WithArgs(int64(4), "2026-10-17", 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Increment(context.Background(), 4, "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRepository_Increment_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUsageRepository(NewDB(db, sq.Dollar, logger.Nop()), logger.Nop())
	mock.ExpectQuery("INSERT INTO usage_daily").WillReturnError(errors.New("boom"))

	_, err = repo.Increment(context.Background(), 4, "2026-10-17")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUsageRepository_GetUsage_NoRowIsZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUsageRepository(NewDB(db, sq.Dollar, logger.Nop()), logger.Nop())
	mock.ExpectQuery("SELECT count FROM usage_daily").
		WithArgs(int64(4), "2026-10-17").
		WillReturnRows(sqlmock.NewRows([]string{"count"}))

	count, err := repo.GetUsage(context.Background(), 4, "2026-10-17")
	require.NoError(t, err)
	assert.Zero(t, count)
}

// ── sqlite ────────────────────────────────────────────────────────────────────

func TestUsageRepository_ConcurrentIncrements(t *testing.T) {
	repo := newSQLiteUsageRepo(t)
	ctx := context.Background()

	const n = 40
	results := make([]int, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, err := repo.Increment(ctx, 1, "2026-10-17")
			assert.NoError(t, err)
			results[i] = count
		}()
	}
	wg.Wait()

	total, err := repo.GetUsage(ctx, 1, "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, n, total)

	// every caller observed a distinct value: no lost update
	sort.Ints(results)
	for i, got := range results {
		assert.Equal(t, i+1, got)
	}
}

func TestUsageRepository_DaysAndUsersAreIndependent(t *testing.T) {
	repo := newSQLiteUsageRepo(t)
	ctx := context.Background()

	_, err := repo.Increment(ctx, 1, "2026-10-16")
	require.NoError(t, err)
	_, err = repo.Increment(ctx, 1, "2026-10-17")
	require.NoError(t, err)
	_, err = repo.Increment(ctx, 2, "2026-10-17")
	require.NoError(t, err)
	count, err := repo.Increment(ctx, 1, "2026-10-17")
	require.NoError(t, err)

	assert.Equal(t, 2, count)

	other, err := repo.GetUsage(ctx, 2, "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 1, other)

	yesterday, err := repo.GetUsage(ctx, 1, "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, 1, yesterday)
}

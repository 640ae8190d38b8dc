package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryColumns = []string{"id", "title", "markdown", "created_at"}

func newRepoWithMock(t *testing.T) (*EntryRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewEntryRepository(mock), mock
}

func TestCreate_ReturnsStoredRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO entries (title, markdown)")).
		WithArgs("", "hello").
		WillReturnRows(pgxmock.NewRows(entryColumns).AddRow(int64(1), "", "hello", now))

	e, err := repo.Create(context.Background(), "", "hello")
	require.NoError(t, err)

	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, "", e.Title)
	assert.Equal(t, "hello", e.Markdown)
	assert.Equal(t, now, e.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO entries")).
		WithArgs("t", "md").
		WillReturnError(errors.New("db is down"))

	_, err := repo.Create(context.Background(), "t", "md")
	require.Error(t, err)
	assert.Regexp(t, `insert entry: .*db is down`, err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM entries")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(entryColumns).AddRow(int64(7), "note", "# hi", now))

	e, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.ID)
	assert.Equal(t, "note", e.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM entries")).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrEntryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListLatest_NewestFirst(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(entryColumns).
		AddRow(int64(3), "c", "three", now).
		AddRow(int64(2), "", "two", now.Add(-time.Minute)).
		AddRow(int64(1), "a", "one", now.Add(-2*time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(DefaultListLimit).
		WillReturnRows(rows)

	items, err := repo.ListLatest(context.Background(), DefaultListLimit)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, "two", items[1].Markdown)
	assert.Equal(t, int64(1), items[2].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListLatest_ClampsLimit(t *testing.T) {
	for _, limit := range []int{0, -1, 500} {
		repo, mock := newRepoWithMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1")).
			WithArgs(DefaultListLimit).
			WillReturnRows(pgxmock.NewRows(entryColumns))

		items, err := repo.ListLatest(context.Background(), limit)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		require.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestListLatest_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM entries")).
		WithArgs(10).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListLatest(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query entries")
}

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return NewGormStore(db), mock
}

func TestGormStore_ListNews_SQL(t *testing.T) {
	s, mock := openMockStore(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "news" WHERE category = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT \* FROM "news" WHERE category = \$1 ORDER BY publish_date DESC,\s?id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category"}).
			AddRow(4, "IFRS 17", "Comptabilité & Normes IFRS"))

	news, total, err := s.ListNews(context.Background(), NewsFilter{Category: "Comptabilité & Normes IFRS", Offset: 6, Limit: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, news, 1)
	assert.Equal(t, "IFRS 17", news[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_SolutionsQuoteOrder(t *testing.T) {
	s, mock := openMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "solutions" ORDER BY "order",\s?"id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order", "title"}))

	solutions, err := s.ListSolutions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, solutions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}), ErrDuplicate)

	fk := &pgconn.PgError{Code: "23503"}
	assert.Same(t, fk, translate(fk))

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

func TestListTikTok(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectQuery(`SELECT date, views, likes, comments, shares FROM tiktokdata WHERE date >= \$1 AND date <= \$2 ORDER BY date ASC, id ASC`).
		WithArgs("2024-01-01", "2024-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"date", "views", "likes", "comments", "shares"}).
			AddRow(day("2024-01-02"), 100, 10, 2, 1).
			AddRow(day("2024-01-03"), 50, 5, 0, 0))

	records, err := NewPlatformDataRepository(conn).ListTikTok(context.Background(), domain.DateRange{
		Start: dayPtr("2024-01-01"),
		End:   dayPtr("2024-01-31"),
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-02", records[0]["date"])
	assert.Equal(t, int64(100), records[0]["views"])
	assert.Equal(t, int64(2), records[0]["comments"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFacebookOpenRange(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectQuery(`SELECT date, post_id, likes, comments, shares, reach FROM facebookdata ORDER BY date ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "post_id", "likes", "comments", "shares", "reach"}).
			AddRow(day("2024-02-01"), "p-1", 3, 1, 0, 900))

	records, err := NewPlatformDataRepository(conn).ListFacebook(context.Background(), domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p-1", records[0]["post_id"])
	assert.Equal(t, int64(900), records[0]["reach"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTikTokTotals(t *testing.T) {
	tests := []struct {
		name   string
		dr     domain.DateRange
		expect func(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery
	}{
		{
			name: "open range sums the whole table",
			dr:   domain.DateRange{},
			expect: func(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery {
				return mock.ExpectQuery(`SELECT COALESCE\(SUM\(views\), 0\), COALESCE\(SUM\(likes \+ comments \+ shares\), 0\) FROM tiktokdata$`)
			},
		},
		{
			name: "bounded range filters by date",
			dr:   domain.DateRange{Start: dayPtr("2024-01-01"), End: dayPtr("2024-01-31")},
			expect: func(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery {
				return mock.ExpectQuery(`FROM tiktokdata WHERE date >= \$1 AND date <= \$2`).
					WithArgs("2024-01-01", "2024-01-31")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.expect(mock).WillReturnRows(sqlmock.NewRows([]string{"reach", "engagement"}).AddRow(1500, 120))

			reach, engagement, err := NewPlatformDataRepository(conn).TikTokTotals(context.Background(), tt.dr)
			require.NoError(t, err)
			assert.Equal(t, int64(1500), reach)
			assert.Equal(t, int64(120), engagement)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveTikTok(t *testing.T) {
	rows := []domain.TikTokRow{
		{Date: day("2024-01-01"), Views: 10, Likes: 1, Comments: 0, Shares: 0},
		{Date: day("2024-01-02"), Views: 20, Likes: 2, Comments: 1, Shares: 1},
	}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, saved int, err error)
	}{
		{
			name: "commits a single multi-row insert",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO tiktokdata \(date,views,likes,comments,shares\) VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\)`).
					WithArgs("2024-01-01", int64(10), int64(1), int64(0), int64(0), "2024-01-02", int64(20), int64(2), int64(1), int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, saved int, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, saved)
			},
		},
		{
			name: "rolls back when the insert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO tiktokdata`).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, saved int, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "insert tiktok rows")
				assert.Zero(t, saved)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			saved, err := NewPlatformDataRepository(conn).SaveTikTok(context.Background(), rows)
			tt.validate(t, saved, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveFacebookUpserts(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO facebookdata .* ON CONFLICT \(date, post_id\) DO UPDATE SET`).
		WithArgs("2024-01-01", "p-1", int64(4), int64(1), int64(0), int64(300)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := NewPlatformDataRepository(conn).SaveFacebook(context.Background(), []domain.FacebookRow{
		{Date: day("2024-01-01"), PostID: "p-1", Likes: 4, Comments: 1, Reach: 300},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTikTokChunksLargeUploads(t *testing.T) {
	conn, mock := newMockConnection(t)

	rows := make([]domain.TikTokRow, insertChunkSize+1)
	for i := range rows {
		rows[i] = domain.TikTokRow{Date: day("2024-01-01"), Views: int64(i)}
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tiktokdata`).WillReturnResult(sqlmock.NewResult(0, insertChunkSize))
	mock.ExpectExec(`INSERT INTO tiktokdata \(date,views,likes,comments,shares\) VALUES \(\$1,\$2,\$3,\$4,\$5\)$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := NewPlatformDataRepository(conn).SaveTikTok(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, insertChunkSize+1, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

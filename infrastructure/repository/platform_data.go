package repository

//go:generate mockgen -source=platform_data.go -destination=mocks/platform_data.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

const (
	tiktokTable   = "tiktokdata"
	facebookTable = "facebookdata"

	// insertChunkSize keeps multi-row inserts well under the 65535 bind
	// parameter limit of the Postgres wire protocol.
	insertChunkSize = 1000
)

type PlatformDataRepository interface {
	ListTikTok(ctx context.Context, r domain.DateRange) ([]domain.RawRecord, error)
	ListFacebook(ctx context.Context, r domain.DateRange) ([]domain.RawRecord, error)
	TikTokTotals(ctx context.Context, r domain.DateRange) (reach int64, engagement int64, err error)
	SaveTikTok(ctx context.Context, rows []domain.TikTokRow) (int, error)
	SaveFacebook(ctx context.Context, rows []domain.FacebookRow) (int, error)
}

type platformDataRepository struct {
	conn *postgres.Connection
}

func NewPlatformDataRepository(conn *postgres.Connection) PlatformDataRepository {
	return &platformDataRepository{
		conn: conn,
	}
}

func withDateRange(q squirrel.SelectBuilder, r domain.DateRange) squirrel.SelectBuilder {
	if r.Start != nil {
		q = q.Where(squirrel.GtOrEq{"date": r.Start.Format(domain.DateLayout)})
	}
	if r.End != nil {
		q = q.Where(squirrel.LtOrEq{"date": r.End.Format(domain.DateLayout)})
	}
	return q
}

func (r *platformDataRepository) ListTikTok(ctx context.Context, dr domain.DateRange) ([]domain.RawRecord, error) {
	query := squirrel.
		Select("date", "views", "likes", "comments", "shares").
		From(tiktokTable)

	query = withDateRange(query, dr).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tiktok query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query tiktok data: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RawRecord, 0)
	for rows.Next() {
		var (
			date                          time.Time
			views, likes, comments, share int64
		)
		if err := rows.Scan(&date, &views, &likes, &comments, &share); err != nil {
			return nil, fmt.Errorf("scan tiktok row: %w", err)
		}
		records = append(records, domain.RawRecord{
			"date":     date.Format(domain.DateLayout),
			"views":    views,
			"likes":    likes,
			"comments": comments,
			"shares":   share,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tiktok rows: %w", err)
	}

	return records, nil
}

func (r *platformDataRepository) ListFacebook(ctx context.Context, dr domain.DateRange) ([]domain.RawRecord, error) {
	query := squirrel.
		Select("date", "post_id", "likes", "comments", "shares", "reach").
		From(facebookTable)

	query = withDateRange(query, dr).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build facebook query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query facebook data: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RawRecord, 0)
	for rows.Next() {
		var (
			date                          time.Time
			postID                        string
			likes, comments, shares, reach int64
		)
		if err := rows.Scan(&date, &postID, &likes, &comments, &shares, &reach); err != nil {
			return nil, fmt.Errorf("scan facebook row: %w", err)
		}
		records = append(records, domain.RawRecord{
			"date":     date.Format(domain.DateLayout),
			"post_id":  postID,
			"likes":    likes,
			"comments": comments,
			"shares":   shares,
			"reach":    reach,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facebook rows: %w", err)
	}

	return records, nil
}

func (r *platformDataRepository) TikTokTotals(ctx context.Context, dr domain.DateRange) (int64, int64, error) {
	query := squirrel.
		Select("COALESCE(SUM(views), 0)", "COALESCE(SUM(likes + comments + shares), 0)").
		From(tiktokTable)

	sqlQuery, args, err := withDateRange(query, dr).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build tiktok totals query: %w", err)
	}

	var reach, engagement int64
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&reach, &engagement); err != nil {
		return 0, 0, fmt.Errorf("query tiktok totals: %w", err)
	}

	return reach, engagement, nil
}

// SaveTikTok inserts every row in one transaction.
func (r *platformDataRepository) SaveTikTok(ctx context.Context, rows []domain.TikTokRow) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(rows); start += insertChunkSize {
			end := min(start+insertChunkSize, len(rows))

			query := squirrel.
				Insert(tiktokTable).
				Columns("date", "views", "likes", "comments", "shares")
			for _, row := range rows[start:end] {
				query = query.Values(row.Date.Format(domain.DateLayout), row.Views, row.Likes, row.Comments, row.Shares)
			}

			if err := execInsert(ctx, tx, query); err != nil {
				return fmt.Errorf("insert tiktok rows: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(rows), nil
}

// SaveFacebook upserts on (date, post_id) so re-uploading a file replaces the
// stored counters instead of duplicating posts.
func (r *platformDataRepository) SaveFacebook(ctx context.Context, rows []domain.FacebookRow) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(rows); start += insertChunkSize {
			end := min(start+insertChunkSize, len(rows))

			query := squirrel.
				Insert(facebookTable).
				Columns("date", "post_id", "likes", "comments", "shares", "reach").
				Suffix("ON CONFLICT (date, post_id) DO UPDATE SET " +
					"likes = EXCLUDED.likes, comments = EXCLUDED.comments, " +
					"shares = EXCLUDED.shares, reach = EXCLUDED.reach")
			for _, row := range rows[start:end] {
				query = query.Values(row.Date.Format(domain.DateLayout), row.PostID, row.Likes, row.Comments, row.Shares, row.Reach)
			}

			if err := execInsert(ctx, tx, query); err != nil {
				return fmt.Errorf("upsert facebook rows: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(rows), nil
}

func execInsert(ctx context.Context, q postgres.Queryer, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, sqlQuery, args...)
	return err
}

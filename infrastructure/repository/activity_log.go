package repository

//go:generate mockgen -source=activity_log.go -destination=mocks/activity_log.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

const activityLogsTable = "activity_logs"

type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	List(ctx context.Context, filter domain.ActivityLogFilter) ([]*domain.ActivityLog, int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type activityLogRepository struct {
	conn *postgres.Connection
}

func NewActivityLogRepository(conn *postgres.Connection) ActivityLogRepository {
	return &activityLogRepository{
		conn: conn,
	}
}

func (r *activityLogRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	sqlQuery, args, err := squirrel.
		Insert(activityLogsTable).
		Columns("id", "user_id", "action", "details", "timestamp").
		Values(entry.ID, entry.UserID, entry.Action, entry.Details, entry.Timestamp).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build activity insert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}

	return nil
}

// activityConditions builds the WHERE clause shared by the page and count
// queries. The end date covers the whole day.
func activityConditions(filter domain.ActivityLogFilter) squirrel.And {
	conds := squirrel.And{}
	if filter.Range.Start != nil {
		conds = append(conds, squirrel.GtOrEq{"timestamp": *filter.Range.Start})
	}
	if filter.Range.End != nil {
		conds = append(conds, squirrel.Lt{"timestamp": filter.Range.End.AddDate(0, 0, 1)})
	}
	if filter.UserID != "" {
		conds = append(conds, squirrel.Eq{"user_id": filter.UserID})
	}
	return conds
}

func (r *activityLogRepository) List(ctx context.Context, filter domain.ActivityLogFilter) ([]*domain.ActivityLog, int, error) {
	conds := activityConditions(filter)

	countQuery := squirrel.Select("COUNT(*)").From(activityLogsTable)
	pageQuery := squirrel.
		Select("id", "user_id", "action", "details", "timestamp").
		From(activityLogsTable)
	if len(conds) > 0 {
		countQuery = countQuery.Where(conds)
		pageQuery = pageQuery.Where(conds)
	}

	countSQL, countArgs, err := countQuery.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build activity count: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity logs: %w", err)
	}

	sqlQuery, args, err := pageQuery.
		OrderBy("timestamp DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build activity query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query activity logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.ActivityLog, 0, filter.Limit)
	for rows.Next() {
		var entry domain.ActivityLog
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.Details, &entry.Timestamp); err != nil {
			return nil, 0, fmt.Errorf("scan activity log: %w", err)
		}
		entry.Timestamp = entry.Timestamp.UTC()
		logs = append(logs, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate activity logs: %w", err)
	}

	return logs, total, nil
}

func (r *activityLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sqlQuery, args, err := squirrel.
		Delete(activityLogsTable).
		Where(squirrel.Lt{"timestamp": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build activity delete: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("delete activity logs: %w", err)
	}

	return result.RowsAffected()
}

package domain

import "time"

type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

type LogActivityRequest struct {
	Action  string `json:"action"`
	Details string `json:"details"`
}

type ActivityLogFilter struct {
	Page   int
	Limit  int
	Range  DateRange
	UserID string
}

func (f ActivityLogFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type ActivityLogPage struct {
	Logs       []*ActivityLog `json:"logs"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

package submission

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuery is a parsed admin listing request.
type ListQuery struct {
	Search    string
	Filters   map[string]string // keyed by Filter.Param; "All ..." sentinels already dropped
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// Normalize clamps pagination to sane bounds.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// Offset is the row offset for the normalized page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// TotalPages computes the page count for a result set.
func (q ListQuery) TotalPages(total int64) int64 {
	if q.Limit <= 0 {
		return 0
	}
	pages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		pages++
	}
	return pages
}

// Stats summarizes one entity for the admin dashboard.
type Stats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"byStatus"`
	Today     int64            `json:"today"`
	ThisWeek  int64            `json:"thisWeek"`
	ThisMonth int64            `json:"thisMonth"`
	LastMonth int64            `json:"lastMonth"`
}

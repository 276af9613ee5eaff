package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(rec *submission.Submission) error
	FindByID(entityType string, id uint) (submission.Submission, error)
	List(s submission.Schema, q submission.ListQuery) ([]submission.Submission, int64, error)
	ListAll(s submission.Schema, q submission.ListQuery) ([]submission.Submission, error)
	Update(entityType string, id uint, updates map[string]any) (submission.Submission, error)
	Delete(entityType string, id uint) error
	Stats(s submission.Schema) (submission.Stats, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

func (r *DBSubmissionRepo) Create(rec *submission.Submission) error {
	return r.db.Create(rec).Error
}

func (r *DBSubmissionRepo) FindByID(entityType string, id uint) (submission.Submission, error) {
	var rec submission.Submission
	if err := r.db.Where("type = ?", entityType).First(&rec, id).Error; err != nil {
		return rec, err
	}
	return rec, nil
}

// filtered builds the shared predicate for listing, export and counting.
// Descriptor-declared search fields and filters resolve either to typed
// columns or to keys of the JSON bag.
func (r *DBSubmissionRepo) filtered(s submission.Schema, q submission.ListQuery) *gorm.DB {
	db := r.db.Model(&submission.Submission{}).Where("type = ?", s.Type)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		var conds []string
		var args []any
		for _, sf := range s.Search {
			if sf.Column != "" {
				conds = append(conds, sf.Column+" ILIKE ?")
			} else {
				conds = append(conds, fmt.Sprintf("fields->>'%s' ILIKE ?", sf.Name))
			}
			args = append(args, pattern)
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}

	for _, f := range s.Filters {
		v, ok := q.Filters[f.Param]
		if !ok {
			continue
		}
		if f.Bool {
			b, err := strconv.ParseBool(v)
			if err != nil {
				continue
			}
			db = db.Where(f.Column+" = ?", b)
			continue
		}
		if f.Column != "" {
			db = db.Where(f.Column+" = ?", v)
		} else {
			db = db.Where(fmt.Sprintf("fields->>'%s' = ?", f.Param), v)
		}
	}

	if q.StartDate != nil {
		db = db.Where(s.DateColumn+" >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		db = db.Where(s.DateColumn+" <= ?", *q.EndDate)
	}

	return db
}

func (r *DBSubmissionRepo) List(s submission.Schema, q submission.ListQuery) ([]submission.Submission, int64, error) {
	base := r.filtered(s, q)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []submission.Submission
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *DBSubmissionRepo) ListAll(s submission.Schema, q submission.ListQuery) ([]submission.Submission, error) {
	var items []submission.Submission
	err := r.filtered(s, q).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *DBSubmissionRepo) Update(entityType string, id uint, updates map[string]any) (submission.Submission, error) {
	res := r.db.Model(&submission.Submission{}).
		Where("type = ? AND id = ?", entityType, id).
		Updates(updates)
	if res.Error != nil {
		return submission.Submission{}, res.Error
	}
	if res.RowsAffected == 0 {
		return submission.Submission{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(entityType, id)
}

func (r *DBSubmissionRepo) Delete(entityType string, id uint) error {
	res := r.db.Where("type = ?", entityType).Delete(&submission.Submission{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBSubmissionRepo) Stats(s submission.Schema) (submission.Stats, error) {
	stats := submission.Stats{ByStatus: map[string]int64{}}

	base := r.db.Model(&submission.Submission{}).Where("type = ?", s.Type)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := base.Session(&gorm.Session{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", today).Count(&stats.Today).Error; err != nil {
		return stats, err
	}
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&stats.ThisWeek).Error; err != nil {
		return stats, err
	}

	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", thisMonth).Count(&stats.ThisMonth).Error; err != nil {
		return stats, err
	}
	err = base.Session(&gorm.Session{}).
		Where("created_at >= ? AND created_at < ?", lastMonth, thisMonth).
		Count(&stats.LastMonth).Error
	if err != nil {
		return stats, err
	}

	return stats, nil
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{
		db: tx,
	}
}

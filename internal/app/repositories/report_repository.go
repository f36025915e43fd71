package repositories

import (
	"context"
	"fmt"
	"slices"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// ReportRepository holds moderation reports in memory
type ReportRepository struct {
	store *memStore[models.Report]
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		store: newMemStore(func(r *models.Report) string { return r.ID }, cloneReport),
	}
}

func cloneReport(r *models.Report) *models.Report {
	cp := *r
	if r.ReviewedBy != nil {
		by := *r.ReviewedBy
		cp.ReviewedBy = &by
	}
	if r.ReviewedAt != nil {
		at := *r.ReviewedAt
		cp.ReviewedAt = &at
	}
	return &cp
}

// Reset replaces every report with the given fixtures
func (r *ReportRepository) Reset(reports []*models.Report) {
	r.store.reset(reports)
}

// FindByID retrieves a report by ID
func (r *ReportRepository) FindByID(ctx context.Context, id string) (*models.Report, error) {
	report, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("report %q: %w", id, apperrors.ErrReportNotFound)
	}
	return report, nil
}

// List returns reports with the given status ("" for all), newest first
func (r *ReportRepository) List(ctx context.Context, status models.ReportStatus) []*models.Report {
	list := r.store.filter(func(rep *models.Report) bool {
		return status == "" || rep.Status == status
	})
	slices.SortStableFunc(list, func(a, b *models.Report) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return list
}

// CountByStatus returns how many reports have the given status
func (r *ReportRepository) CountByStatus(ctx context.Context, status models.ReportStatus) int {
	return r.store.count(func(rep *models.Report) bool { return rep.Status == status })
}

// Create stores a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.store.insert(report, nil)
}

// Update applies fn to the stored report atomically
func (r *ReportRepository) Update(ctx context.Context, id string, fn func(*models.Report) error) (*models.Report, error) {
	report, found, err := r.store.update(id, fn)
	if !found {
		return nil, fmt.Errorf("report %q: %w", id, apperrors.ErrReportNotFound)
	}
	return report, err
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/conexao/internal/app/auth"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/simulate"
)

// ReportService defines the interface for the reporting workflow
type ReportService interface {
	CreateReport(ctx context.Context, reporter *models.User, target models.ReportTarget, targetID string, req *dto.CreateReportRequest) (*models.Report, error)
	ListReports(ctx context.Context, status models.ReportStatus) []dto.ReportView
	ReviewReport(ctx context.Context, id string, admin *models.User, status models.ReportStatus) (*models.Report, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	reportRepo   *repositories.ReportRepository
	favorRepo    *repositories.FavorRepository
	userRepo     *repositories.UserRepository
	authzService *auth.AuthorizationService
	backend      *simulate.Backend
	now          Clock
	logger       zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo *repositories.ReportRepository,
	favorRepo *repositories.FavorRepository,
	userRepo *repositories.UserRepository,
	authzService *auth.AuthorizationService,
	backend *simulate.Backend,
	logger zerolog.Logger,
) ReportService {
	return &reportServiceImpl{
		reportRepo:   reportRepo,
		favorRepo:    favorRepo,
		userRepo:     userRepo,
		authzService: authzService,
		backend:      backend,
		now:          time.Now,
		logger:       logger,
	}
}

// CreateReport stores a pending report about a favor or a user
func (s *reportServiceImpl) CreateReport(ctx context.Context, reporter *models.User, target models.ReportTarget, targetID string, req *dto.CreateReportRequest) (*models.Report, error) {
	if reporter == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	switch target {
	case models.ReportTargetFavor:
		favor, err := s.favorRepo.FindByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if favor.IsRequester(reporter.ID) {
			return nil, apperrors.NewBadRequestError("cannot report own favor")
		}
	case models.ReportTargetUser:
		if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
			return nil, err
		}
		if targetID == reporter.ID {
			return nil, apperrors.NewBadRequestError("cannot report yourself")
		}
	default:
		return nil, apperrors.NewBadRequestError("unknown report target")
	}

	report := &models.Report{
		ID:         uuid.NewString(),
		ReporterID: reporter.ID,
		TargetType: target,
		TargetID:   targetID,
		Reason:     models.ReportReason(req.Reason),
		Comments:   strings.TrimSpace(req.Comments),
		Status:     models.ReportStatusPending,
		CreatedAt:  s.now(),
	}

	err := s.backend.Do(ctx, "reports.create", func() error {
		return s.reportRepo.Create(ctx, report)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("targetID", targetID).Msg("Failed to submit report")
		return nil, err
	}

	s.logger.Info().
		Str("reportID", report.ID).
		Str("reporterID", reporter.ID).
		Str("targetType", string(target)).
		Str("targetID", targetID).
		Str("reason", string(report.Reason)).
		Msg("Report submitted")
	return report, nil
}

// ListReports resolves reports for the moderation page
func (s *reportServiceImpl) ListReports(ctx context.Context, status models.ReportStatus) []dto.ReportView {
	reports := s.reportRepo.List(ctx, status)
	views := make([]dto.ReportView, 0, len(reports))
	for _, r := range reports {
		view := dto.ReportView{Report: r}
		if reporter, err := s.userRepo.FindByID(ctx, r.ReporterID); err == nil {
			view.Reporter = reporter
		}
		view.TargetLabel, view.TargetLink = s.describeTarget(ctx, r)
		views = append(views, view)
	}
	return views
}

func (s *reportServiceImpl) describeTarget(ctx context.Context, r *models.Report) (label, link string) {
	switch r.TargetType {
	case models.ReportTargetFavor:
		if f, err := s.favorRepo.FindByID(ctx, r.TargetID); err == nil {
			return f.Title, "/favors/" + f.ID
		}
	case models.ReportTargetUser:
		if u, err := s.userRepo.FindByID(ctx, r.TargetID); err == nil {
			return u.Name, "/users/" + u.ID
		}
	}
	return r.TargetID + " (removido)", ""
}

// ReviewReport closes a pending report as resolved or ignored
func (s *reportServiceImpl) ReviewReport(ctx context.Context, id string, admin *models.User, status models.ReportStatus) (*models.Report, error) {
	if err := s.authzService.ValidateAdmin(ctx, userID(admin)); err != nil {
		return nil, err
	}
	if status != models.ReportStatusResolved && status != models.ReportStatusIgnored {
		return nil, apperrors.NewBadRequestError("invalid review outcome")
	}

	var updated *models.Report
	err := s.backend.Do(ctx, "admin.reports.review", func() error {
		r, err := s.reportRepo.Update(ctx, id, func(r *models.Report) error {
			if !r.Review(status, admin.ID, s.now()) {
				return apperrors.ErrReportAlreadyClosed
			}
			return nil
		})
		updated = r
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("reportID", id).Msg("Report review rejected")
		return nil, err
	}

	s.logger.Info().Str("reportID", id).Str("status", string(status)).Str("adminID", admin.ID).Msg("Report reviewed")
	return updated, nil
}

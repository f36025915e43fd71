package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/simulate"
)

// NotificationService defines the interface for in-app notifications
type NotificationService interface {
	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID string) int
	MarkRead(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Notify(ctx context.Context, recipients []string, typ models.NotificationType, title, message, link string)
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	backend          *simulate.Backend
	now              Clock
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	backend *simulate.Backend,
	logger zerolog.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		backend:          backend,
		now:              time.Now,
		logger:           logger,
	}
}

// ListNotifications returns the user's notifications, newest first
func (s *notificationServiceImpl) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.notificationRepo.ListByUser(ctx, userID), nil
}

// UnreadCount is the badge number in the navigation bar
func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID string) int {
	if userID == "" {
		return 0
	}
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkRead flags one of the user's notifications as read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, apperrors.NewForbiddenError("notification belongs to another user")
	}

	var updated *models.Notification
	err = s.backend.Do(ctx, "notifications.markRead", func() error {
		updated, err = s.notificationRepo.MarkRead(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Str("notificationID", id).Msg("Failed to mark notification as read")
		return nil, err
	}
	return updated, nil
}

// MarkAllRead flags every unread notification of the user
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, apperrors.ErrUnauthenticated
	}

	changed := 0
	err := s.backend.Do(ctx, "notifications.markAllRead", func() error {
		changed = s.notificationRepo.MarkAllRead(ctx, userID)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug().Str("userID", userID).Int("changed", changed).Msg("Notifications marked as read")
	return changed, nil
}

// Notify stores one notification per distinct recipient. Failures are logged
// and never abort the action that triggered them.
func (s *notificationServiceImpl) Notify(ctx context.Context, recipients []string, typ models.NotificationType, title, message, link string) {
	seen := make([]string, 0, len(recipients))
	for _, userID := range recipients {
		if userID == "" || slices.Contains(seen, userID) {
			continue
		}
		seen = append(seen, userID)

		n := &models.Notification{
			ID:        uuid.NewString(),
			UserID:    userID,
			Type:      typ,
			Title:     title,
			Message:   message,
			Link:      link,
			CreatedAt: s.now(),
		}
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.Error().Err(fmt.Errorf("notify %s: %w", userID, err)).Msg("Failed to store notification")
		}
	}
}

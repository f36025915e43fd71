package repositories

import (
	"context"
	"fmt"
	"slices"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// NotificationRepository holds notifications in memory
type NotificationRepository struct {
	store *memStore[models.Notification]
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		store: newMemStore(func(n *models.Notification) string { return n.ID }, cloneNotification),
	}
}

func cloneNotification(n *models.Notification) *models.Notification {
	cp := *n
	return &cp
}

// Reset replaces every notification with the given fixtures
func (r *NotificationRepository) Reset(notifications []*models.Notification) {
	r.store.reset(notifications)
}

// FindByID retrieves a notification by ID
func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	n, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("notification %q: %w", id, apperrors.ErrNotificationNotFound)
	}
	return n, nil
}

// ListByUser returns a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) []*models.Notification {
	list := r.store.filter(func(n *models.Notification) bool { return n.UserID == userID })
	slices.SortStableFunc(list, func(a, b *models.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return list
}

// CountUnread returns how many of a user's notifications are unread
func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) int {
	return r.store.count(func(n *models.Notification) bool { return n.UserID == userID && !n.Read })
}

// Create stores a new notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.store.insert(n, nil)
}

// MarkRead flags one notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	n, found, err := r.store.update(id, func(n *models.Notification) error {
		n.Read = true
		return nil
	})
	if !found {
		return nil, fmt.Errorf("notification %q: %w", id, apperrors.ErrNotificationNotFound)
	}
	return n, err
}

// MarkAllRead flags every unread notification of a user and returns how many changed
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) int {
	changed := 0
	for _, n := range r.store.filter(func(n *models.Notification) bool { return n.UserID == userID && !n.Read }) {
		if _, _, err := r.store.update(n.ID, func(n *models.Notification) error {
			n.Read = true
			return nil
		}); err == nil {
			changed++
		}
	}
	return changed
}

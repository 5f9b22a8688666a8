package usecase

import (
	"context"
	"errors"
	"time"

	"medifriend/internal/converter"
	"medifriend/internal/delivery/dto"
	"medifriend/internal/delivery/http/middleware"
	"medifriend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Retention policy: read rows expire a week after creation, everything goes
// after thirty days. Listings never return more than one panel's worth.
const (
	notificationListLimit = 50
	readRetention         = 7 * 24 * time.Hour
	maxRetention          = 30 * 24 * time.Hour
)

type NotificationUsecase interface {
	GetMyNotifications(ctx context.Context, unreadOnly bool) (*dto.NotificationListResponse, error)
	GetUnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error)
	OpenPanel(ctx context.Context) error
	SweepExpired(ctx context.Context) error
}

type notificationUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// GetMyNotifications lists the user's notifications, newest first. Stale read
// rows are swept before the fetch so the panel never resurrects them.
func (u *notificationUsecase) GetMyNotifications(ctx context.Context, unreadOnly bool) (*dto.NotificationListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	cutoff := time.Now().Add(-readRetention)
	if err := u.notificationRepo.DeleteReadBefore(ctx, userID, cutoff); err != nil {
		u.log.Warnf("Failed to sweep read notifications for user %s: %+v", userID, err)
		return nil, err
	}

	notifications, err := u.notificationRepo.FindByUserID(ctx, userID, unreadOnly, notificationListLimit)
	if err != nil {
		u.log.Warnf("Failed to find notifications for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponse(notifications),
		Total:         len(notifications),
	}, nil
}

func (u *notificationUsecase) GetUnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	count, err := u.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

// OpenPanel acknowledges the whole panel: everything unread becomes read,
// then every read row is purged. The next fetch starts from a clean slate.
func (u *notificationUsecase) OpenPanel(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	if err := u.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		u.log.Warnf("Failed to mark notifications read for user %s: %+v", userID, err)
		return err
	}

	if err := u.notificationRepo.DeleteRead(ctx, userID); err != nil {
		u.log.Warnf("Failed to purge read notifications for user %s: %+v", userID, err)
		return err
	}

	return nil
}

// SweepExpired removes notifications older than the maximum retention window
// across all users. Runs once at process start.
func (u *notificationUsecase) SweepExpired(ctx context.Context) error {
	cutoff := time.Now().Add(-maxRetention)
	removed, err := u.notificationRepo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		u.log.Warnf("Failed to sweep expired notifications: %+v", err)
		return err
	}

	u.log.Infof("Notification sweep: removed=%d, cutoff=%s", removed, cutoff.Format("2006-01-02"))
	return nil
}

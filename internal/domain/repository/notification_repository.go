package repository

import (
	"context"
	"time"

	"medifriend/internal/domain/entity"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]entity.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteRead(ctx context.Context, userID uuid.UUID) error
	DeleteReadBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) error
	// DeleteCreatedBefore removes every notification older than the cutoff
	// regardless of owner or read state. Returns the number of rows removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

package notification

import "context"

type NotificationRepository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByIDAndUserID(ctx context.Context, notificationID, userID uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, limit int) ([]*Notification, error)
	CountUnreadByUserID(ctx context.Context, userID uint) (int64, error)
	MarkAllReadByUserID(ctx context.Context, userID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

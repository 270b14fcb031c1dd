package repository

import (
	"context"

	"campus-rooms/internal/domain/notification"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"

	"campus-rooms/internal/pkg/pgconv"
)

const insertNotificationSQL = `
INSERT INTO notifications (id, receiver_id, message, type, timestamp)
VALUES ($1, $2, $3, $4, $5)`

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Insert(ctx context.Context, dbtx db.DBTX, n *notification.Notification) error {
	_, err := dbtx.Exec(ctx, insertNotificationSQL,
		n.ID,
		pgconv.UUIDPtrToPgtype(n.ReceiverID),
		n.Message,
		string(n.Type),
		n.Timestamp,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert notification", err)
	}
	return nil
}

package service

import (
	"context"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/logger"
	"rentnest-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

// Notify writes the notification and swallows failures; lifecycle
// operations never depend on delivery.
func (s *notificationService) Notify(ctx context.Context, userID int32, nType domain.NotificationType, title, message string, data map[string]string) {
	note := &domain.Notification{
		UserID:  userID,
		Type:    nType,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create notification", "user_id", userID, "type", nType, "error", err)
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, userID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}

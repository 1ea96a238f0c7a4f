package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error)
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error) {
	notifications, err := s.repo.Notification.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user notifications",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get user notifications: %w", err)
	}

	notificationResponses := make([]response.NotificationResponse, len(notifications))
	for i, n := range notifications {
		notificationResponses[i] = response.NotificationToResponse(n)
	}

	return notificationResponses, nil
}

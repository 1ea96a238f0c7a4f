package usecase

import (
	"car-rental/internal/data/repository"
	"car-rental/pkg/notify"
	"car-rental/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Car          CarService
	Booking      BookingService
	Timeline     TimelineService
	Notification NotificationService
}

func NewService(
	repo *repository.Repository,
	cache redis.Cmdable,
	notifier notify.Notifier,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Car:          NewCarService(repo, cache, config, log),
		Booking:      NewBookingService(repo, notifier, log),
		Timeline:     NewTimelineService(repo, log),
		Notification: NewNotificationService(repo, log),
	}
}

package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier delivers a booking alert to an external channel. Delivery
// is best-effort: callers log failures and move on.
type Notifier interface {
	Notify(ctx context.Context, photoURL, message string) error
}

// ConsoleNotifier logs alerts instead of delivering them. Used when
// no Telegram credentials are configured.
type ConsoleNotifier struct {
	log *zap.Logger
}

func NewConsole(log *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{log: log.With(zap.String("notifier", "console"))}
}

func (c *ConsoleNotifier) Notify(ctx context.Context, photoURL, message string) error {
	c.log.Info("Notification (console)",
		zap.String("photo", photoURL),
		zap.String("message", message),
	)
	return nil
}

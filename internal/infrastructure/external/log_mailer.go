package external

import (
	"context"
	"log/slog"

	"tryon-api/internal/domain/entities"
	"tryon-api/internal/domain/repositories"
)

// LogMailer records the notification it would have sent. No mail is delivered.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) repositories.Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, notification *entities.EmailNotification) error {
	m.logger.InfoContext(ctx, "Sending email",
		"email", notification.Email(),
		"userName", notification.UserName(),
		"imageURL", notification.ImageURL())
	return nil
}

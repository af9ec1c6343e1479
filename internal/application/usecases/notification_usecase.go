package usecases

import (
	"context"
	"fmt"

	"tryon-api/internal/domain/entities"
	"tryon-api/internal/domain/repositories"
)

const StatusSent = "sent"

type NotificationUseCase struct {
	mailer repositories.Mailer
}

func NewNotificationUseCase(mailer repositories.Mailer) *NotificationUseCase {
	return &NotificationUseCase{
		mailer: mailer,
	}
}

type NotificationInput struct {
	Email    string
	ImageURL string
	UserName string
}

type NotificationOutput struct {
	Status string
}

func (uc *NotificationUseCase) Send(ctx context.Context, input NotificationInput) (*NotificationOutput, error) {
	notification := entities.NewEmailNotification(input.Email, input.ImageURL, input.UserName)

	if err := uc.mailer.Send(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to send notification: %w", err)
	}

	return &NotificationOutput{Status: StatusSent}, nil
}

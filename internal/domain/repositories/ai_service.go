package repositories

import (
	"context"

	"tryon-api/internal/domain/entities"
)

// 試着画像生成サービス
type TryOnAIService interface {
	// CheckCredentials returns ErrMissingCredentials when no credential is configured.
	CheckCredentials() error

	// GenerateTryOn submits the prompt and both request images in one call.
	GenerateTryOn(ctx context.Context, prompt string, request *entities.TryOnRequest) (*entities.GeneratedContent, error)
}

// メール通知サービス
type Mailer interface {
	Send(ctx context.Context, notification *entities.EmailNotification) error
}

package repositories

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// ErrMissingCredentials is returned when no provider credential is configured.
var ErrMissingCredentials = errors.New("missing Gemini API key")

// AIクライアント共通設定
type AIClientConfig struct {
	Backend   string
	APIKey    string
	ProjectID string
	Location  string
}

// ContentGenerator is the slice of the genai Models API the service uses.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GenAI Client Pool
// 初回利用時にクライアントを生成し、以降は共有する
type GenAIClientPool interface {
	GetContentGenerator(ctx context.Context) (ContentGenerator, error)

	// クライアントを生成せずに認証情報の有無だけ確認する
	CheckCredentials() error

	// リソースのクリーンアップ
	Close() error
}

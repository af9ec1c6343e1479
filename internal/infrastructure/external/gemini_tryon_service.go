package external

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"tryon-api/internal/domain/entities"
	"tryon-api/internal/domain/repositories"
)

// 入力画像は ToJPEG 済み。未対応形式もこのタグのまま送り、判別はモデル側に任せる
const inputMimeType = "image/jpeg"

type GeminiTryOnService struct {
	clientPool repositories.GenAIClientPool
	model      string
}

func NewGeminiTryOnService(clientPool repositories.GenAIClientPool, model string) repositories.TryOnAIService {
	return &GeminiTryOnService{
		clientPool: clientPool,
		model:      model,
	}
}

func (s *GeminiTryOnService) CheckCredentials() error {
	return s.clientPool.CheckCredentials()
}

func (s *GeminiTryOnService) GenerateTryOn(ctx context.Context, prompt string, request *entities.TryOnRequest) (*entities.GeneratedContent, error) {
	generator, err := s.clientPool.GetContentGenerator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GenAI client: %w", err)
	}

	slog.Info("GenerateTryOn", "model", s.model, "requestID", request.ID(),
		"personSize", len(request.PersonImage().Data()),
		"garmentSize", len(request.GarmentImage().Data()))

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(request.PersonImage().Data(), inputMimeType),
		genai.NewPartFromBytes(request.GarmentImage().Data(), inputMimeType),
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := generator.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return extractContent(resp), nil
}

// extractContent keeps the first inline data part of the first candidate
// and every text part.
func extractContent(resp *genai.GenerateContentResponse) *entities.GeneratedContent {
	content := entities.NewGeneratedContent()

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		slog.Warn("Gemini API response has no candidates")
		return content
	}

	slog.Info("Gemini API response",
		"candidatesCount", len(resp.Candidates),
		"partsCount", len(resp.Candidates[0].Content.Parts))

	for i, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		slog.Debug("Processing part", "index", i, "hasText", part.Text != "", "hasInlineData", part.InlineData != nil)

		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			if !content.HasImage() {
				content.SetImage(part.InlineData.Data, part.InlineData.MIMEType)
			}
			continue
		}

		if !part.Thought {
			content.AddText(part.Text)
		}
	}

	return content
}

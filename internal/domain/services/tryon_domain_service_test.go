package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tryon-api/internal/domain/entities"
	"tryon-api/internal/domain/repositories"
	"tryon-api/internal/domain/valueobjects"
)

type mockAIService struct {
	content *entities.GeneratedContent
	err     error
	credErr error

	calls      int
	lastPrompt string
}

func (m *mockAIService) CheckCredentials() error {
	return m.credErr
}

func (m *mockAIService) GenerateTryOn(ctx context.Context, prompt string, request *entities.TryOnRequest) (*entities.GeneratedContent, error) {
	m.calls++
	m.lastPrompt = prompt
	return m.content, m.err
}

func createTestImageData(t *testing.T) *valueobjects.ImageData {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	imageData, err := valueobjects.NewImageData(buf.Bytes())
	if err != nil {
		t.Fatalf("Failed to create test image data: %v", err)
	}

	return imageData
}

func newValidRequest(t *testing.T, style valueobjects.Style) *entities.TryOnRequest {
	request, err := entities.NewTryOnRequest(
		"https://example.com/original.jpg", "",
		createTestImageData(t), createTestImageData(t),
		style, "upper_body",
	)
	require.NoError(t, err)
	return request
}

func TestTryOnDomainService_ProcessTryOn(t *testing.T) {
	imageBytes := []byte("\x89PNG generated image bytes")

	t.Run("inline image becomes a data URL with the exact bytes", func(t *testing.T) {
		content := entities.NewGeneratedContent()
		content.SetImage(imageBytes, "image/webp")
		mockAI := &mockAIService{content: content}

		result := NewTryOnDomainService(mockAI).ProcessTryOn(context.Background(), newValidRequest(t, valueobjects.StyleStudio))

		require.True(t, result.IsSuccess(), result.Message())
		assert.Equal(t, entities.StatusSuccess, result.Status())
		assert.Equal(t, "https://example.com/original.jpg", result.OriginalImageURL())

		prefix := "data:image/webp;base64,"
		require.True(t, strings.HasPrefix(result.GeneratedImageURL(), prefix))
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.GeneratedImageURL(), prefix))
		require.NoError(t, err)
		assert.Equal(t, imageBytes, decoded)
	})

	t.Run("missing mime type defaults to png", func(t *testing.T) {
		content := entities.NewGeneratedContent()
		content.SetImage(imageBytes, "")

		result := NewTryOnDomainService(&mockAIService{content: content}).ProcessTryOn(context.Background(), newValidRequest(t, ""))

		require.True(t, result.IsSuccess())
		assert.True(t, strings.HasPrefix(result.GeneratedImageURL(), "data:image/png;base64,"))
	})

	t.Run("text only response is reported as an error", func(t *testing.T) {
		content := entities.NewGeneratedContent()
		content.AddText("I cannot generate images of this person.")

		result := NewTryOnDomainService(&mockAIService{content: content}).ProcessTryOn(context.Background(), newValidRequest(t, ""))

		assert.False(t, result.IsSuccess())
		assert.Equal(t, entities.ReasonModelRefusal, result.Reason())
		assert.Contains(t, result.Message(), "I cannot generate images of this person.")
	})

	t.Run("empty response reports no image generated", func(t *testing.T) {
		result := NewTryOnDomainService(&mockAIService{content: entities.NewGeneratedContent()}).ProcessTryOn(context.Background(), newValidRequest(t, ""))

		assert.Equal(t, entities.StatusError, result.Status())
		assert.Equal(t, entities.ReasonNoImage, result.Reason())
		assert.Equal(t, MessageNoImage, result.Message())
	})

	t.Run("AI service error", func(t *testing.T) {
		mockAI := &mockAIService{err: errors.New("AI service failed")}

		result := NewTryOnDomainService(mockAI).ProcessTryOn(context.Background(), newValidRequest(t, ""))

		assert.Equal(t, entities.ReasonProviderError, result.Reason())
		assert.Contains(t, result.Message(), "AI service failed")
	})

	t.Run("quota error handling", func(t *testing.T) {
		mockAI := &mockAIService{err: errors.New("Error 429, Status: RESOURCE_EXHAUSTED")}

		result := NewTryOnDomainService(mockAI).ProcessTryOn(context.Background(), newValidRequest(t, ""))

		assert.Equal(t, entities.ReasonQuotaExceeded, result.Reason())
		assert.Contains(t, result.Message(), "service temporarily unavailable due to high demand")
	})

	t.Run("missing credentials", func(t *testing.T) {
		mockAI := &mockAIService{err: fmt.Errorf("client pool: %w", repositories.ErrMissingCredentials)}

		result := NewTryOnDomainService(mockAI).ProcessTryOn(context.Background(), newValidRequest(t, ""))

		assert.Equal(t, entities.ReasonMissingCredentials, result.Reason())
		assert.Equal(t, MessageMissingCredentials, result.Message())
	})

	t.Run("credential check", func(t *testing.T) {
		service := NewTryOnDomainService(&mockAIService{credErr: repositories.ErrMissingCredentials})
		result := service.CheckCredentials()
		require.NotNil(t, result)
		assert.Equal(t, entities.ReasonMissingCredentials, result.Reason())
		assert.Equal(t, MessageMissingCredentials, result.Message())

		assert.Nil(t, NewTryOnDomainService(&mockAIService{}).CheckCredentials())
	})

	t.Run("nil request never reaches the provider", func(t *testing.T) {
		mockAI := &mockAIService{}

		result := NewTryOnDomainService(mockAI).ProcessTryOn(context.Background(), nil)

		assert.Equal(t, entities.ReasonMissingImage, result.Reason())
		assert.Zero(t, mockAI.calls)
	})
}

func TestTryOnDomainService_PromptUsesStyle(t *testing.T) {
	content := entities.NewGeneratedContent()
	content.SetImage([]byte{1}, "image/png")
	mockAI := &mockAIService{content: content}

	NewTryOnDomainService(mockAI).ProcessTryOn(context.Background(), newValidRequest(t, valueobjects.StyleEditorial))

	require.Equal(t, 1, mockAI.calls)
	assert.Contains(t, mockAI.lastPrompt, valueobjects.StyleEditorial.Description())
	assert.Contains(t, mockAI.lastPrompt, "Category: upper body clothing")
}

func TestBuildPrompt(t *testing.T) {
	t.Run("unknown style falls back to the default description", func(t *testing.T) {
		prompt := BuildPrompt(valueobjects.Style("neon-noir"), "lower_body")

		assert.Contains(t, prompt, "STYLE: "+valueobjects.StyleStudio.Description())
		assert.Contains(t, prompt, "Category: lower body clothing")
	})

	t.Run("fixed instructions are present", func(t *testing.T) {
		prompt := BuildPrompt(valueobjects.StyleOutdoor, "dresses")

		assert.Contains(t, prompt, "IDENTITY: Preserve the person's exact face")
		assert.Contains(t, prompt, "FIT: The garment should fit")
		assert.Contains(t, prompt, "STYLE: "+valueobjects.StyleOutdoor.Description())
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tryon-api/internal/domain/entities"
	"tryon-api/internal/domain/repositories"
	"tryon-api/internal/domain/valueobjects"
)

const (
	MessageMissingImage       = "Missing image data (Base64 required)."
	MessageMissingCredentials = "Missing Gemini API Key."
	MessageNoImage            = "No image generated."
	modelResponsePrefix       = "Model response: "
	quotaMessagePrefix        = "service temporarily unavailable due to high demand"
)

const promptTemplate = `Create a stunning, photorealistic virtual try-on image.

TASK: Generate an image of the person from the first photo wearing the clothing item from the second photo.

CRITICAL REQUIREMENTS:
1. IDENTITY: Preserve the person's exact face, facial features, skin tone, hair, and body proportions
2. GARMENT: Show the clothing item from the second image on the person naturally
3. FIT: The garment should fit the person's body shape realistically with proper draping and folds
4. POSE: Maintain the person's natural pose or adjust slightly for a flattering look

STYLE: %s

TECHNICAL SPECS:
- Category: %s clothing
- Quality: Ultra high resolution, 4K quality
- Lighting: Realistic shadows and highlights that match the garment's fabric
- Focus: Sharp focus on the person and garment

OUTPUT: A single beautiful, inspiring fashion photograph that would make someone want to purchase this item.`

type TryOnDomainService struct {
	aiService repositories.TryOnAIService
}

func NewTryOnDomainService(aiService repositories.TryOnAIService) *TryOnDomainService {
	return &TryOnDomainService{
		aiService: aiService,
	}
}

// BuildPrompt renders the try-on instructions for the request's style and category.
func BuildPrompt(style valueobjects.Style, category string) string {
	return fmt.Sprintf(promptTemplate, style.Description(), valueobjects.HumanizeCategory(category))
}

// CheckCredentials returns a missing-credentials result, or nil when the
// provider is configured.
func (s *TryOnDomainService) CheckCredentials() *entities.TryOnResult {
	if err := s.aiService.CheckCredentials(); err != nil {
		slog.Error("Provider credentials unavailable", "error", err)
		return s.classifyError("", err)
	}
	return nil
}

// ProcessTryOn never returns a Go error: every outcome is a TryOnResult.
func (s *TryOnDomainService) ProcessTryOn(ctx context.Context, request *entities.TryOnRequest) *entities.TryOnResult {
	if err := s.validateRequest(request); err != nil {
		var id entities.TryOnRequestID
		if request != nil {
			id = request.ID()
		}
		return entities.NewErrorResult(id, entities.ReasonMissingImage, MessageMissingImage)
	}

	if err := request.PrepareImages(); err != nil {
		return entities.NewErrorResult(request.ID(), entities.ReasonInvalidImage, fmt.Sprintf("image preparation failed: %v", err))
	}

	slog.Info("Generating try-on",
		"requestID", request.ID(),
		"style", request.Style(),
		"category", request.Category())

	prompt := BuildPrompt(request.Style(), request.Category())

	content, err := s.aiService.GenerateTryOn(ctx, prompt, request)
	if err != nil {
		slog.Error("Try-on generation failed", "requestID", request.ID(), "error", err)
		return s.classifyError(request.ID(), err)
	}

	if content.HasImage() {
		slog.Info("Generation complete", "requestID", request.ID(), "mimeType", content.MimeType(), "size", len(content.ImageData()))
		dataURL := valueobjects.DataURL(content.MimeType(), content.ImageData())
		return entities.NewSuccessResult(request.ID(), dataURL, request.ImageURL())
	}

	if text := content.Text(); text != "" {
		slog.Warn("Model returned text instead of image", "requestID", request.ID(), "text", text)
		return entities.NewErrorResult(request.ID(), entities.ReasonModelRefusal, modelResponsePrefix+text)
	}

	slog.Warn("No image found in response", "requestID", request.ID())
	return entities.NewErrorResult(request.ID(), entities.ReasonNoImage, MessageNoImage)
}

func (s *TryOnDomainService) validateRequest(request *entities.TryOnRequest) error {
	if request == nil {
		return fmt.Errorf("request is required")
	}

	if request.PersonImage() == nil {
		return fmt.Errorf("person image is required")
	}

	if request.GarmentImage() == nil {
		return fmt.Errorf("garment image is required")
	}

	return nil
}

func (s *TryOnDomainService) classifyError(id entities.TryOnRequestID, err error) *entities.TryOnResult {
	switch {
	case errors.Is(err, repositories.ErrMissingCredentials):
		return entities.NewErrorResult(id, entities.ReasonMissingCredentials, MessageMissingCredentials)
	case s.isQuotaError(err):
		return entities.NewErrorResult(id, entities.ReasonQuotaExceeded, fmt.Sprintf("%s: %v", quotaMessagePrefix, err))
	default:
		return entities.NewErrorResult(id, entities.ReasonProviderError, err.Error())
	}
}

func (s *TryOnDomainService) isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "resourceexhausted") ||
		strings.Contains(errStr, "resource_exhausted")
}

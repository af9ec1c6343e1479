package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tryon-api/internal/domain/entities"
	"tryon-api/internal/domain/services"
	"tryon-api/internal/domain/valueobjects"
)

type TryOnUseCase struct {
	domainService *services.TryOnDomainService
}

func NewTryOnUseCase(domainService *services.TryOnDomainService) *TryOnUseCase {
	return &TryOnUseCase{
		domainService: domainService,
	}
}

// TryOnInput mirrors the /api/generate body. Images are base64, optionally
// as data URLs.
type TryOnInput struct {
	ImageURL      string
	PersonBase64  string
	GarmentURL    string
	GarmentBase64 string
	Style         string
	Category      string
}

// Execute checks credentials before touching the images, so a missing key
// wins over missing image data.
func (uc *TryOnUseCase) Execute(ctx context.Context, input TryOnInput) *entities.TryOnResult {
	if result := uc.domainService.CheckCredentials(); result != nil {
		return result
	}

	personBytes, personErr := valueobjects.DecodeBase64(input.PersonBase64)
	garmentBytes, garmentErr := valueobjects.DecodeBase64(input.GarmentBase64)

	if errors.Is(personErr, valueobjects.ErrEmptyImage) || errors.Is(garmentErr, valueobjects.ErrEmptyImage) {
		slog.Warn("Missing image data", "hasPerson", personErr == nil, "hasGarment", garmentErr == nil)
		return entities.NewErrorResult("", entities.ReasonMissingImage, services.MessageMissingImage)
	}

	personImage, err := uc.toImageData("person", personBytes, personErr)
	if err != nil {
		return entities.NewErrorResult("", entities.ReasonInvalidImage, err.Error())
	}

	garmentImage, err := uc.toImageData("garment", garmentBytes, garmentErr)
	if err != nil {
		return entities.NewErrorResult("", entities.ReasonInvalidImage, err.Error())
	}

	request, err := entities.NewTryOnRequest(
		input.ImageURL,
		input.GarmentURL,
		personImage,
		garmentImage,
		valueobjects.Style(input.Style),
		input.Category,
	)
	if err != nil {
		return entities.NewErrorResult("", entities.ReasonMissingImage, services.MessageMissingImage)
	}

	return uc.domainService.ProcessTryOn(ctx, request)
}

func (uc *TryOnUseCase) toImageData(label string, data []byte, decodeErr error) (*valueobjects.ImageData, error) {
	if decodeErr != nil {
		return nil, fmt.Errorf("invalid %s image: %w", label, decodeErr)
	}

	imageData, err := valueobjects.NewImageData(data)
	if err != nil {
		return nil, fmt.Errorf("invalid %s image: %w", label, err)
	}
	return imageData, nil
}

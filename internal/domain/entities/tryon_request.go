package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tryon-api/internal/domain/valueobjects"
)

type TryOnRequestID string

// TryOnRequest is a single virtual try-on generation, alive for one HTTP request.
type TryOnRequest struct {
	id           TryOnRequestID
	imageURL     string
	garmentURL   string
	personImage  *valueobjects.ImageData
	garmentImage *valueobjects.ImageData
	style        valueobjects.Style
	category     string
	createdAt    time.Time
}

func NewTryOnRequest(
	imageURL string,
	garmentURL string,
	personImage *valueobjects.ImageData,
	garmentImage *valueobjects.ImageData,
	style valueobjects.Style,
	category string,
) (*TryOnRequest, error) {
	if personImage == nil {
		return nil, fmt.Errorf("person image is required")
	}

	if garmentImage == nil {
		return nil, fmt.Errorf("garment image is required")
	}

	if style == "" {
		style = valueobjects.StyleDefault
	}

	if category == "" {
		category = valueobjects.DefaultCategory
	}

	return &TryOnRequest{
		id:           TryOnRequestID(uuid.NewString()),
		imageURL:     imageURL,
		garmentURL:   garmentURL,
		personImage:  personImage,
		garmentImage: garmentImage,
		style:        style,
		category:     category,
		createdAt:    time.Now(),
	}, nil
}

func (r *TryOnRequest) ID() TryOnRequestID {
	return r.id
}

func (r *TryOnRequest) ImageURL() string {
	return r.imageURL
}

func (r *TryOnRequest) GarmentURL() string {
	return r.garmentURL
}

func (r *TryOnRequest) PersonImage() *valueobjects.ImageData {
	return r.personImage
}

func (r *TryOnRequest) GarmentImage() *valueobjects.ImageData {
	return r.garmentImage
}

func (r *TryOnRequest) Style() valueobjects.Style {
	return r.style
}

func (r *TryOnRequest) Category() string {
	return r.category
}

func (r *TryOnRequest) CreatedAt() time.Time {
	return r.createdAt
}

// PrepareImages re-encodes both images as JPEG, the type they are tagged
// with when sent to the provider. Formats without a decoder pass through as is.
func (r *TryOnRequest) PrepareImages() error {
	var err error

	r.personImage, err = r.personImage.ToJPEG()
	if err != nil {
		return fmt.Errorf("failed to convert person image to JPEG: %w", err)
	}

	r.garmentImage, err = r.garmentImage.ToJPEG()
	if err != nil {
		return fmt.Errorf("failed to convert garment image to JPEG: %w", err)
	}

	return nil
}

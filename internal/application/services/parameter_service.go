package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"tryon-api/internal/application/usecases"
	"tryon-api/internal/domain/valueobjects"
)

// GenerateRequest is the JSON body of POST /api/generate.
// image_url must be present but may be empty; it is only echoed back.
type GenerateRequest struct {
	ImageURL      *string `json:"image_url" validate:"required"`
	ImageBase64   string  `json:"image_base64"`
	Style         string  `json:"style"`
	GarmentURL    string  `json:"garment_url"`
	GarmentBase64 string  `json:"garment_base64"`
	Category      string  `json:"category" validate:"omitempty,max=64"`
}

// SendEmailRequest is the JSON body of POST /api/send-email.
type SendEmailRequest struct {
	Email    string `json:"email" validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	UserName string `json:"user_name"`
}

type ParameterService struct {
	validate *validator.Validate
}

func NewParameterService() *ParameterService {
	return &ParameterService{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ParseGenerate decodes the body and applies the style and category defaults.
func (s *ParameterService) ParseGenerate(r *http.Request) (usecases.TryOnInput, error) {
	var req GenerateRequest
	if err := s.decode(r, &req); err != nil {
		return usecases.TryOnInput{}, err
	}

	return usecases.TryOnInput{
		ImageURL:      *req.ImageURL,
		PersonBase64:  req.ImageBase64,
		GarmentURL:    req.GarmentURL,
		GarmentBase64: req.GarmentBase64,
		Style:         s.getString(req.Style, string(valueobjects.StyleDefault)),
		Category:      s.getString(req.Category, valueobjects.DefaultCategory),
	}, nil
}

func (s *ParameterService) ParseSendEmail(r *http.Request) (usecases.NotificationInput, error) {
	var req SendEmailRequest
	if err := s.decode(r, &req); err != nil {
		return usecases.NotificationInput{}, err
	}

	return usecases.NotificationInput{
		Email:    req.Email,
		ImageURL: req.ImageURL,
		UserName: req.UserName,
	}, nil
}

func (s *ParameterService) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid request: %s", describe(verrs))
		}
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func (s *ParameterService) getString(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, ", ")
}

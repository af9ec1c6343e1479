package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appservices "tryon-api/internal/application/services"
	"tryon-api/internal/application/usecases"
	"tryon-api/internal/domain/entities"
)

const defaultMaxBodySize = 20 << 20 // 20MB

type TryOnHandler struct {
	tryOnUseCase     *usecases.TryOnUseCase
	parameterService *appservices.ParameterService
	maxBodySize      int64
}

type NotificationHandler struct {
	notificationUseCase *usecases.NotificationUseCase
	parameterService    *appservices.ParameterService
	maxBodySize         int64
}

type generateResponse struct {
	Status            string `json:"status"`
	GeneratedImageURL string `json:"generated_image_url"`
	OriginalImageURL  string `json:"original_image_url"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func NewTryOnHandler(
	tryOnUseCase *usecases.TryOnUseCase,
	parameterService *appservices.ParameterService,
	maxBodySize int64,
) *TryOnHandler {
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	return &TryOnHandler{
		tryOnUseCase:     tryOnUseCase,
		parameterService: parameterService,
		maxBodySize:      maxBodySize,
	}
}

func NewNotificationHandler(
	notificationUseCase *usecases.NotificationUseCase,
	parameterService *appservices.ParameterService,
	maxBodySize int64,
) *NotificationHandler {
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		parameterService:    parameterService,
		maxBodySize:         maxBodySize,
	}
}

func (h *TryOnHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	input, err := h.parameterService.ParseGenerate(r)
	if err != nil {
		sendParseError(w, err)
		return
	}

	result := h.tryOnUseCase.Execute(r.Context(), input)

	if !result.IsSuccess() {
		slog.Warn("Try-on returned an error",
			"requestID", result.RequestID(),
			"reason", result.Reason(),
			"message", result.Message())
		sendError(w, result.Message(), statusFor(result.Reason()))
		return
	}

	w.Header().Set("Cache-Control", "no-store, max-age=0")
	writeJSON(w, http.StatusOK, generateResponse{
		Status:            result.Status(),
		GeneratedImageURL: result.GeneratedImageURL(),
		OriginalImageURL:  result.OriginalImageURL(),
	})
}

func (h *TryOnHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *NotificationHandler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	input, err := h.parameterService.ParseSendEmail(r)
	if err != nil {
		sendParseError(w, err)
		return
	}

	output, err := h.notificationUseCase.Send(r.Context(), input)
	if err != nil {
		slog.Error("Notification failed", "error", err)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: output.Status})
}

// statusFor maps a failure reason to the HTTP status code of the response.
// Provider-side failures are reported with 200 and status "error".
func statusFor(reason entities.FailureReason) int {
	switch reason {
	case entities.ReasonMissingImage:
		return http.StatusBadRequest
	case entities.ReasonMissingCredentials:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// sendParseError answers 413 for bodies cut off by MaxBytesReader and 400
// for everything else.
func sendParseError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		sendError(w, "Request body too large.", http.StatusRequestEntityTooLarge)
		return
	}
	sendError(w, err.Error(), http.StatusBadRequest)
}

func sendError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, errorResponse{Status: entities.StatusError, Message: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

package entities

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// FailureReason classifies why a try-on produced no image. The HTTP layer
// maps it to a status code.
type FailureReason string

const (
	ReasonNone               FailureReason = ""
	ReasonMissingImage       FailureReason = "missing_image"
	ReasonMissingCredentials FailureReason = "missing_credentials"
	ReasonInvalidImage       FailureReason = "invalid_image"
	ReasonProviderError      FailureReason = "provider_error"
	ReasonQuotaExceeded      FailureReason = "quota_exceeded"
	ReasonModelRefusal       FailureReason = "model_refusal"
	ReasonNoImage            FailureReason = "no_image"
)

// TryOnResult is either a success carrying a data URL or an error carrying
// a human readable message.
type TryOnResult struct {
	requestID         TryOnRequestID
	status            string
	generatedImageURL string
	originalImageURL  string
	message           string
	reason            FailureReason
}

func NewSuccessResult(requestID TryOnRequestID, generatedImageURL, originalImageURL string) *TryOnResult {
	return &TryOnResult{
		requestID:         requestID,
		status:            StatusSuccess,
		generatedImageURL: generatedImageURL,
		originalImageURL:  originalImageURL,
	}
}

func NewErrorResult(requestID TryOnRequestID, reason FailureReason, message string) *TryOnResult {
	return &TryOnResult{
		requestID: requestID,
		status:    StatusError,
		message:   message,
		reason:    reason,
	}
}

func (r *TryOnResult) RequestID() TryOnRequestID {
	return r.requestID
}

func (r *TryOnResult) Status() string {
	return r.status
}

func (r *TryOnResult) IsSuccess() bool {
	return r.status == StatusSuccess
}

func (r *TryOnResult) GeneratedImageURL() string {
	return r.generatedImageURL
}

func (r *TryOnResult) OriginalImageURL() string {
	return r.originalImageURL
}

func (r *TryOnResult) Message() string {
	return r.message
}

func (r *TryOnResult) Reason() FailureReason {
	return r.reason
}

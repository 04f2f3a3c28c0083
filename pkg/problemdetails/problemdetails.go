package problemdetails

import "fmt"

const (
	TypeInvalidURL         = "invalid-url"
	TypeInvalidRequest     = "invalid-request"
	TypeNotFound           = "not-found"
	TypeRateLimitExceeded  = "rate-limit-exceeded"
	TypeCapacityExhausted  = "capacity-exhausted"
	TypeInternalError      = "internal-error"
	TypeValidationError    = "validation-error"
	TypeServiceUnavailable = "service-unavailable"
)

const typeBaseURL = "https://shortlink.dev/problems/"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProblemDetail is an RFC 7807 error body.
type ProblemDetail struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", typeBaseURL, problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func NewValidation(errors []FieldError) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", typeBaseURL, TypeValidationError),
		Title:  "Validation Failed",
		Status: 400,
		Detail: "Request validation failed",
		Errors: errors,
	}
}

// Error lets a ProblemDetail travel through error returns.
func (p *ProblemDetail) Error() string {
	return fmt.Sprintf("%d %s: %s", p.Status, p.Title, p.Detail)
}

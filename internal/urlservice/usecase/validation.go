package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"shortlink/internal/urlservice/domain"
)

const (
	maxURLLength = 2048
	// MaxBatchSize caps URLs per batch request.
	MaxBatchSize = 5
)

var httpURL = validation.By(func(value interface{}) error {
	raw, _ := value.(string)
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return errors.New("must have a host")
	}
	return nil
})

// ValidateURL checks rawURL is an absolute http(s) URL the service will store.
// The returned error wraps domain.ErrInvalidURL.
func ValidateURL(rawURL string) error {
	if err := checkURL(rawURL); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	return nil
}

func checkURL(rawURL string) error {
	return validation.Validate(rawURL,
		validation.Required.Error("url is required"),
		validation.Length(1, maxURLLength).Error(fmt.Sprintf("url exceeds maximum length of %d characters", maxURLLength)),
		is.RequestURL.Error("must be a valid URL"),
		httpURL,
	)
}

// BatchValidationError lists every rejected entry of a batch request by index.
type BatchValidationError struct {
	Errors validation.Errors
}

func (e *BatchValidationError) Error() string {
	return e.Errors.Error()
}

func (e *BatchValidationError) Unwrap() error {
	return domain.ErrInvalidURL
}

func validateBatch(urls []string) error {
	if len(urls) == 0 {
		return fmt.Errorf("%w: at least one url is required", domain.ErrInvalidURL)
	}
	if len(urls) > MaxBatchSize {
		return fmt.Errorf("%w: at most %d urls per batch, got %d", domain.ErrInvalidURL, MaxBatchSize, len(urls))
	}

	errs := validation.Errors{}
	for i, u := range urls {
		if err := checkURL(u); err != nil {
			errs[fmt.Sprintf("urls[%d]", i)] = err
		}
	}
	if len(errs) > 0 {
		return &BatchValidationError{Errors: errs}
	}
	return nil
}

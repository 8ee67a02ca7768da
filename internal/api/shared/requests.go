package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator
// package and returns one message per violated rule.
func ValidateRequest(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	return ValidationMessages(err)
}

// ValidationMessages flattens a validator error into field-level
// messages, one per violated rule.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "uuid":
		return fe.Field() + " must be a valid UUID"
	default:
		return fe.Field() + " is invalid"
	}
}

// ParsePageParams reads the pageNumber and pageSize query parameters
// and normalizes them against the configured default and maximum.
// Unparseable values fall back to the defaults rather than erroring;
// the envelope contract clamps instead of rejecting.
func ParsePageParams(r *http.Request, defaultSize, maxSize int) PageParams {
	number := 1
	if raw := r.URL.Query().Get("pageNumber"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			number = parsed
		}
	}
	size := defaultSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}
	return NormalizePage(number, size, defaultSize, maxSize)
}

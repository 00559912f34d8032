package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody is the JSON failure shape: a message, plus field-level
// violations for validation failures.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Error writes a failure body with just a message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

// ValidationError writes a 400-style body carrying the field violations
// extracted from a gin binding error.
func ValidationError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, ErrorBody{Message: message, Errors: FieldErrors(err)})
}

// FieldErrors flattens a binding error into field/rule pairs. Non-validator
// errors (malformed JSON and the like) yield a single "body" entry.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		return out
	}
	return []FieldError{{Field: "body", Rule: "malformed"}}
}

// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

// ContextUserKey is the gin context key RequireAuth stores the authenticated user under.
const ContextUserKey = "user"

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError is one entry of ValidationErrorResponse
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists every field a submission got wrong
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors"`
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; instead returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get(ContextUserKey)
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

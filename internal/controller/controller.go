// Package controller holds the request helpers shared by the HTTP handlers.
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/submission"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// ParseID reads the path parameter name as a positive integer id.
// On failure it writes 400 with "Invalid <label> ID" and returns false.
func ParseID(c *gin.Context, name, label string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid " + label + " ID",
		})
		return 0, false
	}
	return uint(id), true
}

// BindJSON decodes the request body into dst. An oversized body answers 413, a value of
// the wrong JSON type 400 with message and the offending field, any other failure 400.
func BindJSON(c *gin.Context, dst any, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Request body too large",
			})
			return false
		}
		var typeError *json.UnmarshalTypeError
		if errors.As(err, &typeError) {
			field := typeError.Field
			if field == "" {
				field = "body"
			}
			c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{
				Error:  message,
				Errors: []utilities.FieldError{{Field: field, Message: "has the wrong type"}},
			})
			return false
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return false
	}
	return true
}

// ValidationFailed answers 400 with the field list of err when it is a *submission.ValidationError.
func ValidationFailed(c *gin.Context, message string, err error) bool {
	var verr *submission.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	fields := make([]utilities.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, utilities.FieldError{Field: f.Field, Message: f.Message})
	}
	c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{
		Error:  message,
		Errors: fields,
	})
	return true
}

// InternalError logs err with the request id and answers 500 with message only.
func InternalError(c *gin.Context, logger *zap.Logger, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString("request_id")),
	)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
		Error: message,
	})
}

// Package response writes the API's JSON error bodies.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"storerating/internal/apperror"
	"storerating/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgInvalidBody = "Invalid request body"

// errorBody carries the message under both "error" and "message"; browser
// clients read "message" and the per-field "errors" list.
type errorBody struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Details any          `json:"details,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldErrors flattens a field->message map into a list ordered by field.
func fieldErrors(details any) []FieldError {
	fields, ok := details.(map[string]string)
	if !ok || len(fields) == 0 {
		return nil
	}
	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Field: field, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// Error aborts the request with the JSON body for err. Anything that is not an
// *apperror.Error is treated as internal. Internal errors are logged and their
// message is never sent to the client.
func Error(c *gin.Context, log *logger.Logger, err error) {
	typed := apperror.As(err)
	if typed == nil {
		typed = apperror.Internal(err, "unhandled error")
	}

	code := typed.Code()
	meta := apperror.MetadataFor(code)
	body := errorBody{Error: typed.Message(), Code: string(code)}

	if code == apperror.CodeInternal {
		if log != nil {
			log.Error(c.Request.Context(), "request failed", err)
		}
		body.Error = meta.PublicMessage
	} else if meta.DetailsAllowed {
		body.Details = typed.Details()
		body.Errors = fieldErrors(body.Details)
	}
	if body.Error == "" {
		body.Error = meta.PublicMessage
	}
	body.Message = body.Error

	_ = c.Error(err)
	c.AbortWithStatusJSON(meta.HTTPStatus, body)
}

// BindError reports a failed ShouldBind* call as a validation error with
// per-field details where the validator provides them.
func BindError(c *gin.Context, err error) {
	Error(c, nil, FromBindError(err))
}

func FromBindError(err error) *apperror.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fieldMessage(fe)
		}
		return apperror.Validation("Validation failed").WithDetails(details)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.Validation(msgInvalidBody).WithDetails(map[string]string{
			typeErr.Field: fmt.Sprintf("must be a %s", typeErr.Type.String()),
		})
	}
	return apperror.Validation(msgInvalidBody)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "strongpassword":
		return "must be 8-16 characters with at least one uppercase letter and one special character"
	}
	return "is invalid"
}

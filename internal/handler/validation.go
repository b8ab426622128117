package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "eventsnow/internal/errors"
)

// fieldMessages maps a failed (struct.field, rule) pair to its client-facing
// message. Every violation of a request body is reported at once, not just the
// first.
var fieldMessages = map[string]string{
	"RegisterRequest.Name.required":          "Username cannot be empty.",
	"RegisterRequest.Name.username":          "Username must be alphanumeric, and can contain underscores",
	"RegisterRequest.Email.required":         "Proper Email is Required",
	"RegisterRequest.Email.email":            "Proper Email is Required",
	"RegisterRequest.Password.required":      "Password is Required",
	"RegisterRequest.Password.min":           "Password must be at least 8 characters long.",
	"RegisterRequest.Password.password_policy": "Password must include one lowercase character, one uppercase character, a number, and a special character, and must not contain spaces.",
	"LoginRequest.Email.required":            "Email is Required",
	"LoginRequest.Password.required":         "Password is Required",
	"UploadEventRequest.Name.required":       "Name is Required",
	"UploadEventRequest.Image.required":      "Image is Required",
	"UploadEventRequest.Price.required":      "Price is Required",
	"UploadEventRequest.Date.required":       "Date is Required",
	"UploadEventRequest.Info.required":       "Info is Required",
	"UploadEventRequest.Type.required":       "Type is Required",
	"UploadEventRequest.Type.oneof":          "Type must be FREE or PRO",
}

// validationResponse aggregates every field violation into one error envelope.
func validationResponse(err error) apperrors.ErrorResponse {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apperrors.NewErrorResponse("Invalid Request Body")
	}

	msgs := make([]string, 0, len(violations))
	for _, fe := range violations {
		key := fmt.Sprintf("%s.%s", fe.StructNamespace(), fe.Tag())
		if msg, ok := fieldMessages[key]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is Invalid", fe.Field()))
	}
	return apperrors.NewErrorResponse(msgs...)
}

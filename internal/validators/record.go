package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-event-keeper/models"
)

const (
	// FieldTitle targets the record title.
	FieldTitle = "title"

	// FieldDescription targets the record description.
	FieldDescription = "description"

	// MaxTitleLength is the width of the title column, in characters.
	MaxTitleLength = 255
)

// RecordValidator validates record creation and update bodies.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateRecordRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateRecordRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreate(*value, fields...)

	case models.UpdateRecordRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateRecordRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateCreate(request models.CreateRecordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(request.Title) {
				return newValidationError(FieldTitle, "title is required")
			}
			if err := checkTitleLength(request.Title); err != nil {
				return err
			}
		case FieldDescription:
			if isBlank(request.Description) {
				return newValidationError(FieldDescription, "description is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate accepts absent fields but rejects present blank ones and a
// body that changes nothing.
func (v *RecordValidator) validateUpdate(request models.UpdateRecordRequest, fields ...string) error {
	if request.IsEmpty() {
		return newValidationError("body", "at least one of title, description must be provided")
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == nil {
				continue
			}
			if isBlank(*request.Title) {
				return newValidationError(FieldTitle, "title must not be empty")
			}
			if err := checkTitleLength(*request.Title); err != nil {
				return err
			}
		case FieldDescription:
			if request.Description != nil && isBlank(*request.Description) {
				return newValidationError(FieldDescription, "description must not be empty")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkTitleLength(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return newValidationError(FieldTitle, "title must be at most %d characters", MaxTitleLength)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

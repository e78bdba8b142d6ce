package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-event-keeper/models"
)

const (
	// FieldUsername targets the account name of a credentials body.
	FieldUsername = "username"

	// FieldPassword targets the secret of a credentials body.
	FieldPassword = "password"
)

// Length bounds applied to token-scheme credentials.
const (
	usernameMinLen = 5
	usernameMaxLen = 20
	passwordMinLen = 6
	passwordMaxLen = 20
)

const passwordSpecials = "@$!%*?&"

// CredentialsValidator validates [models.Credentials]. The plain variant only
// requires both fields; the strict variant used by the token scheme also
// enforces length and password composition rules.
type CredentialsValidator struct {
	strict bool
}

// NewPlainCredentialsValidator returns a validator requiring a non-empty
// username and password.
func NewPlainCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// NewTokenCredentialsValidator returns a validator enforcing:
//   - username of 5 to 20 characters;
//   - password of 6 to 20 characters from [A-Za-z0-9@$!%*?&] containing at
//     least one lowercase letter, one uppercase letter, one digit and one
//     special character.
func NewTokenCredentialsValidator() Validator {
	return &CredentialsValidator{strict: true}
}

func (v *CredentialsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := v.validateUsername(creds.Name); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validatePassword(creds.Secret); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateUsername(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError(FieldUsername, "username is required")
	}
	if !v.strict {
		return nil
	}

	if n := utf8.RuneCountInString(name); n < usernameMinLen || n > usernameMaxLen {
		return newValidationError(FieldUsername, "username must be %d to %d characters long", usernameMinLen, usernameMaxLen)
	}

	return nil
}

func (v *CredentialsValidator) validatePassword(secret string) error {
	if secret == "" {
		return newValidationError(FieldPassword, "password is required")
	}
	if !v.strict {
		return nil
	}

	if n := len(secret); n < passwordMinLen || n > passwordMaxLen {
		return newValidationError(FieldPassword, "password must be %d to %d characters long", passwordMinLen, passwordMaxLen)
	}

	var lower, upper, digit, special bool
	for _, r := range secret {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return newValidationError(FieldPassword, "password may only contain letters, digits and %s", passwordSpecials)
		}
	}

	if !lower || !upper || !digit || !special {
		return newValidationError(FieldPassword,
			"password must contain a lowercase letter, an uppercase letter, a digit and one of %s", passwordSpecials)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
	assert.Equal(t, field, vErr.Field)
	assert.NotEmpty(t, vErr.Message)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCredentialsValidator_Dispatch(t *testing.T) {
	v := NewPlainCredentialsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var creds *models.Credentials
		require.ErrorIs(t, v.Validate(ctx, creds), ErrUnsupportedType)
	})

	t.Run("pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Credentials{Name: "a", Secret: "b"}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.Credentials{Name: "a", Secret: "b"}, "email"), ErrUnknownField)
	})
}

func TestPlainCredentialsValidator(t *testing.T) {
	v := NewPlainCredentialsValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Credentials{Name: "al", Secret: "x"}))

	requireValidationError(t, v.Validate(ctx, models.Credentials{Name: "  ", Secret: "x"}), FieldUsername)
	requireValidationError(t, v.Validate(ctx, models.Credentials{Name: "al"}), FieldPassword)

	// field scoping skips the password check
	require.NoError(t, v.Validate(ctx, models.Credentials{Name: "al"}, FieldUsername))
}

func TestTokenCredentialsValidator(t *testing.T) {
	tests := []struct {
		name      string
		creds     models.Credentials
		wantField string
	}{
		{name: "valid", creds: models.Credentials{Name: "alice", Secret: "Secret1!"}},
		{name: "valid max lengths", creds: models.Credentials{Name: "abcdefghijklmnopqrst", Secret: "Aa1@Aa1@Aa1@Aa1@Aa1@"}},
		{name: "empty username", creds: models.Credentials{Secret: "Secret1!"}, wantField: FieldUsername},
		{name: "short username", creds: models.Credentials{Name: "bob", Secret: "Secret1!"}, wantField: FieldUsername},
		{name: "long username", creds: models.Credentials{Name: "abcdefghijklmnopqrstu", Secret: "Secret1!"}, wantField: FieldUsername},
		{name: "empty password", creds: models.Credentials{Name: "alice"}, wantField: FieldPassword},
		{name: "short password", creds: models.Credentials{Name: "alice", Secret: "Se1!"}, wantField: FieldPassword},
		{name: "long password", creds: models.Credentials{Name: "alice", Secret: "Aa1@Aa1@Aa1@Aa1@Aa1@x"}, wantField: FieldPassword},
		{name: "no uppercase", creds: models.Credentials{Name: "alice", Secret: "secret1!"}, wantField: FieldPassword},
		{name: "no lowercase", creds: models.Credentials{Name: "alice", Secret: "SECRET1!"}, wantField: FieldPassword},
		{name: "no digit", creds: models.Credentials{Name: "alice", Secret: "Secret!!"}, wantField: FieldPassword},
		{name: "no special", creds: models.Credentials{Name: "alice", Secret: "Secret12"}, wantField: FieldPassword},
		{name: "forbidden character", creds: models.Credentials{Name: "alice", Secret: "Secret1!#"}, wantField: FieldPassword},
		{name: "space", creds: models.Credentials{Name: "alice", Secret: "Secret 1!"}, wantField: FieldPassword},
	}

	v := NewTokenCredentialsValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.wantField)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "title", Message: "title is required"}
	assert.Equal(t, "title: title is required", err.Error())
}

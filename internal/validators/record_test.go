package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRecordValidator_Create(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.CreateRecordRequest{Title: "t", Description: "d"}))
	require.NoError(t, v.Validate(ctx, &models.CreateRecordRequest{Title: "t", Description: "d"}))

	requireValidationError(t, v.Validate(ctx, models.CreateRecordRequest{Description: "d"}), FieldTitle)
	requireValidationError(t, v.Validate(ctx, models.CreateRecordRequest{Title: "t", Description: " \t"}), FieldDescription)
	require.NoError(t, v.Validate(ctx, models.CreateRecordRequest{Title: strings.Repeat("é", MaxTitleLength), Description: "d"}))
	requireValidationError(t, v.Validate(ctx, models.CreateRecordRequest{Title: strings.Repeat("t", MaxTitleLength+1), Description: "d"}), FieldTitle)
	require.ErrorIs(t, v.Validate(ctx, models.CreateRecordRequest{}, "owner"), ErrUnknownField)
}

func TestRecordValidator_Update(t *testing.T) {
	tests := []struct {
		name      string
		request   models.UpdateRecordRequest
		wantField string
	}{
		{name: "title only", request: models.UpdateRecordRequest{Title: strPtr("t")}},
		{name: "description only", request: models.UpdateRecordRequest{Description: strPtr("d")}},
		{name: "both", request: models.UpdateRecordRequest{Title: strPtr("t"), Description: strPtr("d")}},
		{name: "nothing to change", request: models.UpdateRecordRequest{}, wantField: "body"},
		{name: "blank title", request: models.UpdateRecordRequest{Title: strPtr("")}, wantField: FieldTitle},
		{name: "title too long", request: models.UpdateRecordRequest{Title: strPtr(strings.Repeat("t", MaxTitleLength+1))}, wantField: FieldTitle},
		{name: "blank description", request: models.UpdateRecordRequest{Title: strPtr("t"), Description: strPtr("  ")}, wantField: FieldDescription},
	}

	v := NewRecordValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.wantField)
		})
	}
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.Credentials{}), ErrUnsupportedType)

	var nilReq *models.UpdateRecordRequest
	assert.ErrorIs(t, v.Validate(context.Background(), nilReq), ErrUnsupportedType)
}

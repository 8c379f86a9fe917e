package validator

import (
	"testing"

	"medical-profile-qr/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateProfileRequest(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		req     dto.CreateProfileRequest
		wantErr bool
	}{
		{
			name: "valid blood type",
			req:  dto.CreateProfileRequest{Name: "Jane", BloodType: "AB-"},
		},
		{
			name: "empty blood type allowed",
			req:  dto.CreateProfileRequest{Name: "Jane"},
		},
		{
			name:    "unknown blood type rejected",
			req:     dto.CreateProfileRequest{Name: "Jane", BloodType: "Z+"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&dto.CreateProfileRequest{BloodType: "Z+"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted, "BloodType")
	assert.Contains(t, formatted["BloodType"], "must be one of")
}

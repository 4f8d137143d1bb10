package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleUser struct {
	Username string  `json:"username" validate:"required,max=150,username"`
	Email    string  `json:"email" validate:"required,email,max=150"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin rider driver"`
	Phone    *string `json:"phone" validate:"omitnil,min=1,max=150"`
}

type sampleRide struct {
	Latitude *float64 `json:"pickup_latitude" validate:"omitnil,latitude"`
}

func TestValidateStruct(t *testing.T) {
	empty := ""
	lat := 91.0

	tests := []struct {
		name   string
		input  any
		expect map[string]string
	}{
		{
			name:   "valid",
			input:  sampleUser{Username: "jane.doe+1@x", Email: "jane@example.com", Role: "driver"},
			expect: nil,
		},
		{
			name:  "missing required fields use json names",
			input: sampleUser{},
			expect: map[string]string{
				"username": "This field is required.",
				"email":    "This field is required.",
			},
		},
		{
			name:  "bad username and role",
			input: sampleUser{Username: "jane doe", Email: "jane@example.com", Role: "pilot"},
			expect: map[string]string{
				"username": "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.",
				"role":     "Must be one of: admin, rider, driver.",
			},
		},
		{
			name:  "present but empty pointer",
			input: sampleUser{Username: "jane", Email: "jane@example.com", Phone: &empty},
			expect: map[string]string{
				"phone": "Ensure this field has at least 1 characters.",
			},
		},
		{
			name:  "latitude out of range",
			input: sampleRide{Latitude: &lat},
			expect: map[string]string{
				"pickup_latitude": "Enter a valid latitude.",
			},
		},
		{
			name:   "nil optional pointer is skipped",
			input:  sampleRide{},
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ValidateStruct(tt.input))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"username": "This field is required.",
		"email":    "Enter a valid email address.",
	})
	assert.Equal(t, "email: Enter a valid email address.; username: This field is required.", got)
}

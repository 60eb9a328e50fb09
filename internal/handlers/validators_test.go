package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRUT(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("rut", validRUT))

	tests := []struct {
		name  string
		rut   string
		valid bool
	}{
		{name: "with dots", rut: "12.345.678-5", valid: true},
		{name: "without dots", rut: "76123450-1", valid: true},
		{name: "check digit K", rut: "20.347.878-K", valid: true},
		{name: "lowercase k", rut: "20347878-k", valid: true},
		{name: "check digit zero", rut: "18.972.691-0", valid: true},
		{name: "wrong check digit", rut: "12.345.678-9", valid: false},
		{name: "missing dash", rut: "123456785", valid: false},
		{name: "letter in body", rut: "12A45678-5", valid: false},
		{name: "too short", rut: "12345-0", valid: false},
		{name: "empty", rut: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.rut, "rut")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

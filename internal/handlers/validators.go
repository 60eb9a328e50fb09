package handlers

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators installs the rut format check on gin's binding
// engine so tax ID fields can use binding:"rut".
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rut", validRUT)
	}
}

// validRUT verifies a Chilean RUT like "76.123.450-1" or "76123450-1".
// The last character is a mod-11 check digit, with K standing in for 10.
func validRUT(fl validator.FieldLevel) bool {
	rut := strings.ToUpper(strings.ReplaceAll(fl.Field().String(), ".", ""))

	parts := strings.Split(rut, "-")
	if len(parts) != 2 || len(parts[1]) != 1 {
		return false
	}
	body, check := parts[0], parts[1][0]
	if len(body) < 7 || len(body) > 9 {
		return false
	}

	sum, factor := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	var expected byte
	switch 11 - sum%11 {
	case 11:
		expected = '0'
	case 10:
		expected = 'K'
	default:
		expected = byte('0' + 11 - sum%11)
	}
	return check == expected
}

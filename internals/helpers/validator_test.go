// file: internals/helpers/validator_test.go
package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name   string `json:"name" validate:"required,max=10"`
		Method string `json:"method" validate:"required,oneof=cash card"`
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(payload{Name: "tuition", Method: "cash"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		errs := ValidateStruct(payload{})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "method")
		assert.NotContains(t, errs, "Name")
	})

	t.Run("required message", func(t *testing.T) {
		errs := ValidateStruct(payload{Method: "cash"})
		require.Contains(t, errs, "name")
		assert.Contains(t, errs["name"], "this field is required")
	})

	t.Run("oneof message carries the choices", func(t *testing.T) {
		errs := ValidateStruct(payload{Name: "tuition", Method: "crypto"})
		require.Contains(t, errs, "method")
		assert.Contains(t, errs["method"], "must be one of: cash card")
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "uniq_student_fee_assignment"`)))
	assert.True(t, IsUniqueViolation(errors.New("ERROR: duplicate key value (SQLSTATE 23505)")))
}

// file: internals/features/finance/fees/dto/fee_template_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestFeeTemplateCreateDTOToModel(t *testing.T) {
	schoolID := uuid.New()
	gradeID := uuid.New()

	t.Run("valid school-wide template", func(t *testing.T) {
		m, err := FeeTemplateCreateDTOToModel(FeeTemplateCreateDTO{
			FeeTemplateName:      "  Tuition Fee  ",
			FeeTemplateAmount:    d("1500.00"),
			FeeTemplateFrequency: "monthly",
		}, schoolID)
		require.NoError(t, err)
		assert.Equal(t, schoolID, m.FeeTemplateSchoolID)
		assert.Equal(t, "Tuition Fee", m.FeeTemplateName, "name is trimmed")
		assert.Equal(t, model.FeeFrequencyMonthly, m.FeeTemplateFrequency)
		assert.Nil(t, m.FeeTemplateGradeID, "nil grade means school-wide")
		assert.True(t, m.FeeTemplateIsActive, "new templates start active")
	})

	t.Run("valid grade-scoped template", func(t *testing.T) {
		m, err := FeeTemplateCreateDTOToModel(FeeTemplateCreateDTO{
			FeeTemplateName:      "Lab Fee Grade 10",
			FeeTemplateAmount:    d("250.00"),
			FeeTemplateFrequency: "one_time",
			FeeTemplateGradeID:   &gradeID,
		}, schoolID)
		require.NoError(t, err)
		require.NotNil(t, m.FeeTemplateGradeID)
		assert.Equal(t, gradeID, *m.FeeTemplateGradeID)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := FeeTemplateCreateDTOToModel(FeeTemplateCreateDTO{
			FeeTemplateName:      "   ",
			FeeTemplateAmount:    d("100"),
			FeeTemplateFrequency: "yearly",
		}, schoolID)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		for _, amt := range []string{"0", "-100.00"} {
			_, err := FeeTemplateCreateDTOToModel(FeeTemplateCreateDTO{
				FeeTemplateName:      "Tuition",
				FeeTemplateAmount:    d(amt),
				FeeTemplateFrequency: "monthly",
			}, schoolID)
			assert.ErrorIs(t, err, ErrBadAmount, "amount %s", amt)
		}
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		_, err := FeeTemplateCreateDTOToModel(FeeTemplateCreateDTO{
			FeeTemplateName:      "Tuition",
			FeeTemplateAmount:    d("100"),
			FeeTemplateFrequency: "weekly",
		}, schoolID)
		assert.ErrorIs(t, err, ErrBadFrequency)
	})
}

func TestApplyFeeTemplateUpdate(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }
	amt := d("999.00")

	base := func() model.FeeTemplate {
		return model.FeeTemplate{
			FeeTemplateName:      "Tuition Fee",
			FeeTemplateAmount:    d("1500.00"),
			FeeTemplateFrequency: model.FeeFrequencyMonthly,
			FeeTemplateIsActive:  true,
		}
	}

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		m := base()
		err := ApplyFeeTemplateUpdate(&m, FeeTemplateUpdateDTO{FeeTemplateAmount: &amt})
		require.NoError(t, err)
		assert.True(t, m.FeeTemplateAmount.Equal(amt))
		assert.Equal(t, "Tuition Fee", m.FeeTemplateName)
		assert.Equal(t, model.FeeFrequencyMonthly, m.FeeTemplateFrequency)
	})

	t.Run("deactivation", func(t *testing.T) {
		m := base()
		err := ApplyFeeTemplateUpdate(&m, FeeTemplateUpdateDTO{FeeTemplateIsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, m.FeeTemplateIsActive)
	})

	t.Run("rejects blank name and keeps the old one", func(t *testing.T) {
		m := base()
		err := ApplyFeeTemplateUpdate(&m, FeeTemplateUpdateDTO{FeeTemplateName: strPtr(" ")})
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.Equal(t, "Tuition Fee", m.FeeTemplateName)
	})

	t.Run("rejects bad frequency", func(t *testing.T) {
		m := base()
		err := ApplyFeeTemplateUpdate(&m, FeeTemplateUpdateDTO{FeeTemplateFrequency: strPtr("daily")})
		assert.ErrorIs(t, err, ErrBadFrequency)
	})
}

// file: internals/features/finance/billings/service/assign_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/finance/billings/model"
	feemodel "schoolku_backend/internals/features/finance/fees/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
)

// =======================================================
// BULK ASSIGNMENT ENGINE
// =======================================================

type AssignService struct {
	DB *gorm.DB
}

type AssignByGradeInput struct {
	SchoolID     uuid.UUID
	GradeID      uuid.UUID
	DueDate      time.Time
	AcademicYear string
	Term         string
}

type AssignByGradeResult struct {
	StudentsMatched  int `json:"students_matched"`
	TemplatesMatched int `json:"templates_matched"`
	Inserted         int `json:"inserted"`
	Skipped          int `json:"skipped"`
}

// AssignByGrade expands every (active student in grade) × (active template
// scoped to the grade or unscoped) into a student fee. Idempotent: the
// composite unique index over (student, template, academic_year, term)
// plus ON CONFLICT DO NOTHING turns re-runs and concurrent duplicates into
// skips, never overwrites — a partially paid fee is left untouched.
func (s *AssignService) AssignByGrade(in AssignByGradeInput) (AssignByGradeResult, error) {
	var out AssignByGradeResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var templates []feemodel.FeeTemplate
		if err := tx.
			Where("fee_template_school_id = ? AND fee_template_is_active = TRUE", in.SchoolID).
			Where("fee_template_grade_id IS NULL OR fee_template_grade_id = ?", in.GradeID).
			Find(&templates).Error; err != nil {
			return err
		}
		if len(templates) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "no active fee templates match this grade")
		}

		var students []studentmodel.Student
		if err := tx.
			Where("student_school_id = ? AND student_grade_id = ? AND student_is_active = TRUE", in.SchoolID, in.GradeID).
			Find(&students).Error; err != nil {
			return err
		}
		if len(students) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "no students found in this grade")
		}

		now := time.Now()
		candidates := make([]model.StudentFee, 0, len(students)*len(templates))
		for _, st := range students {
			for _, tpl := range templates {
				sf := model.StudentFee{
					StudentFeeSchoolID:      in.SchoolID,
					StudentFeeStudentID:     st.StudentID,
					StudentFeeFeeTemplateID: tpl.FeeTemplateID,
					StudentFeeAmountOwed:    tpl.FeeTemplateAmount, // captured now, template edits don't follow
					StudentFeeDueDate:       datatypes.Date(in.DueDate),
					StudentFeeAcademicYear:  in.AcademicYear,
					StudentFeeTerm:          in.Term,
				}
				Reconcile(&sf, now)
				candidates = append(candidates, sf)
			}
		}

		// Single bulk insert; conflicts on the assignment index are skips,
		// not errors. RowsAffected counts only the actually inserted subset.
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_fee_student_id"},
				{Name: "student_fee_fee_template_id"},
				{Name: "student_fee_academic_year"},
				{Name: "student_fee_term"},
			},
			DoNothing: true,
		}).CreateInBatches(&candidates, 500)
		if res.Error != nil {
			return res.Error
		}

		out = AssignByGradeResult{
			StudentsMatched:  len(students),
			TemplatesMatched: len(templates),
			Inserted:         int(res.RowsAffected),
			Skipped:          len(candidates) - int(res.RowsAffected),
		}
		return nil
	})
	return out, err
}

// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is the slim directory row the finance features read from. The
// full student lifecycle (enrollment, profiles, attendance) lives in the
// surrounding application; this backend only lists and references.
type Student struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:ix_student_school" json:"student_school_id"`
	StudentGradeID  uuid.UUID `gorm:"column:student_grade_id;type:uuid;not null;index:ix_student_grade" json:"student_grade_id"`

	StudentName     string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentIsActive bool   `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

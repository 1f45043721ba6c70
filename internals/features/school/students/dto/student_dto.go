// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

type StudentResponse struct {
	StudentID      uuid.UUID `json:"student_id"`
	StudentGradeID uuid.UUID `json:"student_grade_id"`
	StudentName    string    `json:"student_name"`
}

func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:      m.StudentID,
		StudentGradeID: m.StudentGradeID,
		StudentName:    m.StudentName,
	}
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

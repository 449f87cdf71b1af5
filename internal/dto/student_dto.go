package dto

import (
	"time"

	"github.com/profboard/profboard-go-api/internal/models"
)

// StudentCreateRequest describes the payload for enrolling a student.
type StudentCreateRequest struct {
	Name                 string  `json:"name" validate:"required,min=2"`
	Email                string  `json:"email" validate:"required,email"`
	RollNumber           string  `json:"roll_number" validate:"required"`
	Batch                string  `json:"batch"`
	Department           string  `json:"department"`
	AttendancePercentage float64 `json:"attendance_percentage" validate:"gte=0,lte=100"`
	ProfessorEmail       string  `json:"professor_email" validate:"required,email"`
}

// StudentResponse is the serialized representation returned to API clients.
type StudentResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	RollNumber           string    `json:"roll_number"`
	Batch                string    `json:"batch"`
	Department           string    `json:"department"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	return StudentResponse{
		ID:                   model.ID,
		Name:                 model.Name,
		Email:                model.Email,
		RollNumber:           model.RollNumber,
		Batch:                model.Batch,
		Department:           model.Department,
		AttendancePercentage: model.AttendancePercentage,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}

	return responses
}

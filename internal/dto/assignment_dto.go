package dto

import (
	"time"

	"github.com/profboard/profboard-go-api/internal/models"
)

// AssignmentCreateRequest describes the payload for creating a new assignment.
type AssignmentCreateRequest struct {
	Title          string   `json:"title" validate:"required,min=3"`
	Subject        string   `json:"subject"`
	Description    string   `json:"description"`
	DueDate        string   `json:"due_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ProfessorEmail string   `json:"professor_email" validate:"required,email"`
	TotalStudents  int      `json:"total_students" validate:"gte=0"`
	SubmittedBy    []string `json:"submitted_by"`
}

// AssignmentUpdateRequest describes the payload for updating an assignment.
type AssignmentUpdateRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=3"`
	Subject       *string   `json:"subject"`
	Description   *string   `json:"description"`
	DueDate       *string   `json:"due_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	TotalStudents *int      `json:"total_students" validate:"omitempty,gte=0"`
	SubmittedBy   *[]string `json:"submitted_by"`
}

// AssignmentResponse is the serialized representation returned to API clients.
// SubmittedCount and SubmissionRate are derived from the submitted roll list.
type AssignmentResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	DueDate        time.Time `json:"due_date"`
	TotalStudents  int       `json:"total_students"`
	SubmittedCount int       `json:"submitted_count"`
	SubmissionRate float64   `json:"submission_rate"`
	SubmittedBy    []string  `json:"submitted_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAssignmentResponse converts a model into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	submitted := []string(model.SubmittedBy)
	if submitted == nil {
		submitted = []string{}
	}

	rate := 0.0
	if model.TotalStudents > 0 {
		rate = float64(len(submitted)) / float64(model.TotalStudents) * 100
	}

	return AssignmentResponse{
		ID:             model.ID,
		Title:          model.Title,
		Subject:        model.Subject,
		Description:    model.Description,
		DueDate:        model.DueDate,
		TotalStudents:  model.TotalStudents,
		SubmittedCount: len(submitted),
		SubmissionRate: rate,
		SubmittedBy:    submitted,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}

package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Assignment represents coursework a professor has handed out.
// SubmittedBy holds the roll numbers of students that have turned it in.
type Assignment struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	Title          string                      `gorm:"size:255;not null" json:"title"`
	Subject        string                      `gorm:"size:255" json:"subject"`
	Description    string                      `gorm:"type:text" json:"description"`
	DueDate        time.Time                   `gorm:"not null" json:"due_date"`
	ProfessorEmail string                      `gorm:"size:255;index;not null" json:"professor_email"`
	TotalStudents  int                         `json:"total_students"`
	SubmittedBy    datatypes.JSONSlice[string] `json:"submitted_by"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// IsPastDue returns true when the assignment deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return reference.After(a.DueDate)
}

// HasSubmission reports whether the given roll number appears in the submitted list.
func (a Assignment) HasSubmission(rollNumber string) bool {
	for _, roll := range a.SubmittedBy {
		if strings.EqualFold(strings.TrimSpace(roll), strings.TrimSpace(rollNumber)) {
			return true
		}
	}
	return false
}

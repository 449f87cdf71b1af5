package models

import "time"

// Student represents a learner enrolled with a professor.
type Student struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"size:255;not null" json:"name"`
	Email                string    `gorm:"size:255;not null" json:"email"`
	RollNumber           string    `gorm:"size:64;not null" json:"roll_number"`
	Batch                string    `gorm:"size:64" json:"batch"`
	Department           string    `gorm:"size:255" json:"department"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	ProfessorEmail       string    `gorm:"size:255;index;not null" json:"professor_email"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

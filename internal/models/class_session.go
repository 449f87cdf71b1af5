package models

import "time"

// ClassSession represents one slot on a professor's teaching schedule.
type ClassSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Subject        string    `gorm:"size:255;not null" json:"subject"`
	Time           string    `gorm:"size:32;not null" json:"time"`
	Duration       string    `gorm:"size:32" json:"duration"`
	Location       string    `gorm:"size:255" json:"location"`
	Batch          string    `gorm:"size:64" json:"batch"`
	IsOngoing      bool      `json:"is_ongoing"`
	ProfessorEmail string    `gorm:"size:255;index;not null" json:"professor_email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

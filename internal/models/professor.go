package models

import "time"

// Professor represents an educator account whose dashboard data we serve.
type Professor struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Department string    `gorm:"size:255" json:"department"`
	Avatar     string    `gorm:"size:512" json:"avatar"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

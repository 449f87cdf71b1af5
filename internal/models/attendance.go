package models

import "time"

// AttendanceRecord captures a student's running attendance figure for a professor's class,
// together with the per-day present/absent counts the dashboard chart consumes.
type AttendanceRecord struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	StudentName          string    `gorm:"size:255;not null" json:"student_name"`
	RollNumber           string    `gorm:"size:64;not null" json:"roll_number"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	Date                 time.Time `gorm:"index" json:"date"`
	PresentCount         int       `json:"present_count"`
	AbsentCount          int       `json:"absent_count"`
	ProfessorEmail       string    `gorm:"size:255;index;not null" json:"professor_email"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

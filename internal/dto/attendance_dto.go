package dto

import (
	"time"

	"github.com/profboard/profboard-go-api/internal/models"
)

// AttendanceRecordResponse is the serialized attendance row returned to clients.
type AttendanceRecordResponse struct {
	ID                   uint      `json:"id"`
	StudentName          string    `json:"student_name"`
	RollNumber           string    `json:"roll_number"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	Date                 time.Time `json:"date"`
	PresentCount         int       `json:"present_count"`
	AbsentCount          int       `json:"absent_count"`
}

// AttendanceChartPoint is one weekday bucket for the dashboard attendance chart.
type AttendanceChartPoint struct {
	Name    string `json:"name"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// NewAttendanceRecordResponse converts a model into a DTO.
func NewAttendanceRecordResponse(model models.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:                   model.ID,
		StudentName:          model.StudentName,
		RollNumber:           model.RollNumber,
		AttendancePercentage: model.AttendancePercentage,
		Date:                 model.Date,
		PresentCount:         model.PresentCount,
		AbsentCount:          model.AbsentCount,
	}
}

// NewAttendanceRecordResponseSlice converts a slice of models into DTOs.
func NewAttendanceRecordResponseSlice(records []models.AttendanceRecord) []AttendanceRecordResponse {
	responses := make([]AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewAttendanceRecordResponse(record))
	}

	return responses
}

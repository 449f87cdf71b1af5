package dto

import (
	"time"

	"github.com/profboard/profboard-go-api/internal/models"
)

// ClassSessionResponse is one slot on the professor's schedule.
type ClassSessionResponse struct {
	ID        uint      `json:"id"`
	Subject   string    `json:"subject"`
	Time      string    `json:"time"`
	Duration  string    `json:"duration"`
	Location  string    `json:"location"`
	Batch     string    `json:"batch"`
	IsOngoing bool      `json:"is_ongoing"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClassSessionResponse converts a model into a DTO.
func NewClassSessionResponse(model models.ClassSession) ClassSessionResponse {
	return ClassSessionResponse{
		ID:        model.ID,
		Subject:   model.Subject,
		Time:      model.Time,
		Duration:  model.Duration,
		Location:  model.Location,
		Batch:     model.Batch,
		IsOngoing: model.IsOngoing,
		CreatedAt: model.CreatedAt,
	}
}

// NewClassSessionResponseSlice converts a slice of models into DTOs.
func NewClassSessionResponseSlice(sessions []models.ClassSession) []ClassSessionResponse {
	responses := make([]ClassSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, NewClassSessionResponse(session))
	}

	return responses
}

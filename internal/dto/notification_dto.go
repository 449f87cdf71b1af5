package dto

import (
	"time"

	"github.com/profboard/profboard-go-api/internal/models"
)

// NotificationCreateRequest describes the payload for recording a notification.
type NotificationCreateRequest struct {
	Type           string `json:"type" validate:"required,oneof=email whatsapp sms"`
	Subject        string `json:"subject"`
	Message        string `json:"message" validate:"required"`
	ProfessorEmail string `json:"professor_email" validate:"required,email"`
}

// NotificationResponse is the serialized notification record.
type NotificationResponse struct {
	ID             uint      `json:"id"`
	Type           string    `json:"type"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	ProfessorEmail string    `json:"professor_email"`
	SentAt         time.Time `json:"sent_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewNotificationResponse converts a model into a DTO.
func NewNotificationResponse(model models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:             model.ID,
		Type:           model.Type,
		Subject:        model.Subject,
		Message:        model.Message,
		Status:         model.Status,
		ProfessorEmail: model.ProfessorEmail,
		SentAt:         model.SentAt,
		CreatedAt:      model.CreatedAt,
	}
}

// NewNotificationResponseSlice converts a slice of models into DTOs.
func NewNotificationResponseSlice(notifications []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, NewNotificationResponse(notification))
	}

	return responses
}

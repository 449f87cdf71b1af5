package models

import "time"

// Notification delivery channels.
const (
	NotificationTypeEmail    = "email"
	NotificationTypeWhatsApp = "whatsapp"
	NotificationTypeSMS      = "sms"
)

// Notification delivery statuses.
const (
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
	NotificationStatusPending = "pending"
)

// Notification records a message a professor asked the platform to deliver.
// Actual delivery happens outside this service; only the record and its status live here.
type Notification struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Type           string    `gorm:"size:16;not null" json:"type"`
	Subject        string    `gorm:"size:255" json:"subject"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	Status         string    `gorm:"size:16;not null;default:pending" json:"status"`
	ProfessorEmail string    `gorm:"size:255;index;not null" json:"professor_email"`
	SentAt         time.Time `json:"sent_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/profboard/profboard-go-api/internal/models"
)

// NotificationRepository persists notification records for a professor.
type NotificationRepository interface {
	ListByProfessor(ctx context.Context, professorEmail string, limit, offset int) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository constructs a notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListByProfessor(ctx context.Context, professorEmail string, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var notifications []models.Notification
	if err := r.db.WithContext(ctx).
		Where("professor_email = ?", professorEmail).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	notification.ProfessorEmail = strings.ToLower(strings.TrimSpace(notification.ProfessorEmail))
	return r.db.WithContext(ctx).Create(notification).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/profboard/profboard-go-api/internal/models"
)

// ClassSessionRepository provides access to a professor's teaching schedule.
type ClassSessionRepository interface {
	ListByProfessor(ctx context.Context, professorEmail string) ([]models.ClassSession, error)
	Create(ctx context.Context, session *models.ClassSession) error
}

type classSessionRepository struct {
	db *gorm.DB
}

// NewClassSessionRepository constructs a class session repository.
func NewClassSessionRepository(db *gorm.DB) ClassSessionRepository {
	return &classSessionRepository{db: db}
}

func (r *classSessionRepository) ListByProfessor(ctx context.Context, professorEmail string) ([]models.ClassSession, error) {
	var sessions []models.ClassSession
	if err := r.db.WithContext(ctx).
		Where("professor_email = ?", professorEmail).
		Order("time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *classSessionRepository) Create(ctx context.Context, session *models.ClassSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/profboard/profboard-go-api/internal/models"
)

// ProfessorRepository provides access to professor profiles.
type ProfessorRepository interface {
	GetByEmail(ctx context.Context, email string) (models.Professor, error)
	Create(ctx context.Context, professor *models.Professor) error
}

type professorRepository struct {
	db *gorm.DB
}

// NewProfessorRepository constructs a GORM-backed professor repository.
func NewProfessorRepository(db *gorm.DB) ProfessorRepository {
	return &professorRepository{db: db}
}

func (r *professorRepository) GetByEmail(ctx context.Context, email string) (models.Professor, error) {
	var professor models.Professor
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", normalized).First(&professor).Error; err != nil {
		return models.Professor{}, err
	}

	return professor, nil
}

func (r *professorRepository) Create(ctx context.Context, professor *models.Professor) error {
	professor.Email = strings.ToLower(strings.TrimSpace(professor.Email))
	return r.db.WithContext(ctx).Create(professor).Error
}

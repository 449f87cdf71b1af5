package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/profboard/profboard-go-api/internal/models"
)

// StudentRepository provides access to student records, always scoped to one professor.
type StudentRepository interface {
	ListByProfessor(ctx context.Context, professorEmail string) ([]models.Student, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) ListByProfessor(ctx context.Context, professorEmail string) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).
		Where("professor_email = ?", professorEmail).
		Order("id ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ProfessorEmail = strings.ToLower(strings.TrimSpace(student.ProfessorEmail))
	return r.db.WithContext(ctx).Create(student).Error
}

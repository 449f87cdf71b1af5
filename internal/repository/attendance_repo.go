package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/profboard/profboard-go-api/internal/models"
)

// AttendanceRepository provides access to attendance records scoped by professor.
type AttendanceRepository interface {
	ListByProfessor(ctx context.Context, professorEmail string) ([]models.AttendanceRecord, error)
	ListSince(ctx context.Context, professorEmail string, since time.Time) ([]models.AttendanceRecord, error)
	Create(ctx context.Context, record *models.AttendanceRecord) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByProfessor(ctx context.Context, professorEmail string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("professor_email = ?", professorEmail).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) ListSince(ctx context.Context, professorEmail string, since time.Time) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("professor_email = ? AND date >= ?", professorEmail, since).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	record.ProfessorEmail = strings.ToLower(strings.TrimSpace(record.ProfessorEmail))
	return r.db.WithContext(ctx).Create(record).Error
}

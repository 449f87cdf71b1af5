package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/repository"
)

// AttendanceService exposes attendance listings and the weekly chart aggregation.
type AttendanceService interface {
	List(ctx context.Context, professorEmail string) ([]dto.AttendanceRecordResponse, error)
	WeeklyChart(ctx context.Context, professorEmail string) ([]dto.AttendanceChartPoint, error)
}

type attendanceService struct {
	repo   repository.AttendanceRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewAttendanceService builds a new attendance service.
func NewAttendanceService(repo repository.AttendanceRepository, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		repo:   repo,
		logger: logger.With().Str("component", "attendance_service").Logger(),
		now:    time.Now,
	}
}

func (s *attendanceService) List(ctx context.Context, professorEmail string) ([]dto.AttendanceRecordResponse, error) {
	records, err := s.repo.ListByProfessor(ctx, professorEmail)
	if err != nil {
		return nil, err
	}

	return dto.NewAttendanceRecordResponseSlice(records), nil
}

// WeeklyChart buckets the last seven days of records by weekday, in the shape the
// dashboard chart consumes directly. Multiple records on the same weekday are
// summed into one bucket; buckets keep the chronological order of the records.
func (s *attendanceService) WeeklyChart(ctx context.Context, professorEmail string) ([]dto.AttendanceChartPoint, error) {
	since := s.now().AddDate(0, 0, -7)
	records, err := s.repo.ListSince(ctx, professorEmail, since)
	if err != nil {
		return nil, err
	}

	points := make([]dto.AttendanceChartPoint, 0, 7)
	index := make(map[string]int, 7)
	for _, record := range records {
		name := record.Date.Format("Mon")
		i, ok := index[name]
		if !ok {
			i = len(points)
			index[name] = i
			points = append(points, dto.AttendanceChartPoint{Name: name})
		}
		points[i].Present += record.PresentCount
		points[i].Absent += record.AbsentCount
	}

	return points, nil
}

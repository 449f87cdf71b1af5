package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/repository"
)

// DashboardService produces the aggregated stats shown on the dashboard landing page.
type DashboardService interface {
	GetStats(ctx context.Context, professorEmail string) (dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	students    repository.StudentRepository
	assignments repository.AssignmentRepository
	sessions    repository.ClassSessionRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
	now         func() time.Time
}

// NewDashboardService builds the stats aggregator.
func NewDashboardService(
	students repository.StudentRepository,
	assignments repository.AssignmentRepository,
	sessions repository.ClassSessionRepository,
	cache *redis.Client,
	ttl time.Duration,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		students:    students,
		assignments: assignments,
		sessions:    sessions,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "dashboard_service").Logger(),
		now:         time.Now,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, professorEmail string) (dto.DashboardStatsResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:stats:%s", professorEmail)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardStatsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("professor_email", professorEmail).Msg("stats cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read stats cache")
		}
	}

	response, err := s.buildStats(ctx, professorEmail)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store stats cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) buildStats(ctx context.Context, professorEmail string) (dto.DashboardStatsResponse, error) {
	students, err := s.students.ListByProfessor(ctx, professorEmail)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 8).Add(-time.Nanosecond)

	dueThisWeek, err := s.assignments.ListDueBetween(ctx, professorEmail, start, end)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	sessions, err := s.sessions.ListByProfessor(ctx, professorEmail)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	var attendanceTotal float64
	for _, student := range students {
		attendanceTotal += student.AttendancePercentage
	}

	average := 0.0
	if len(students) > 0 {
		average = attendanceTotal / float64(len(students))
	}

	return dto.DashboardStatsResponse{
		TotalStudents:      len(students),
		AverageAttendance:  average,
		AssignmentsDueWeek: len(dueThisWeek),
		ClassesToday:       len(sessions),
	}, nil
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/repository"
)

// ScheduleService exposes the professor's class schedule.
type ScheduleService interface {
	List(ctx context.Context, professorEmail string) ([]dto.ClassSessionResponse, error)
	Today(ctx context.Context, professorEmail string) ([]dto.ClassSessionResponse, error)
}

type scheduleService struct {
	repo   repository.ClassSessionRepository
	logger zerolog.Logger
}

// NewScheduleService builds a new schedule service.
func NewScheduleService(repo repository.ClassSessionRepository, logger zerolog.Logger) ScheduleService {
	return &scheduleService{
		repo:   repo,
		logger: logger.With().Str("component", "schedule_service").Logger(),
	}
}

func (s *scheduleService) List(ctx context.Context, professorEmail string) ([]dto.ClassSessionResponse, error) {
	sessions, err := s.repo.ListByProfessor(ctx, professorEmail)
	if err != nil {
		return nil, err
	}

	return dto.NewClassSessionResponseSlice(sessions), nil
}

// Today returns the full schedule for now; sessions are recurring weekly slots, so
// the day view and the list view currently coincide. Kept separate so the frontend
// contract survives once per-weekday slots land.
func (s *scheduleService) Today(ctx context.Context, professorEmail string) ([]dto.ClassSessionResponse, error) {
	return s.List(ctx, professorEmail)
}

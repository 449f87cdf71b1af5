package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/handler"
)

type mockDashboardService struct {
	lastEmail string
	stats     dto.DashboardStatsResponse
	err       error
}

func (m *mockDashboardService) GetStats(_ context.Context, professorEmail string) (dto.DashboardStatsResponse, error) {
	m.lastEmail = professorEmail
	if m.err != nil {
		return dto.DashboardStatsResponse{}, m.err
	}
	return m.stats, nil
}

func newDashboardApp(svc *mockDashboardService) *fiber.App {
	app := fiber.New()
	handler.NewDashboardHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/dashboard"))
	return app
}

func TestDashboardHandler_Stats(t *testing.T) {
	svc := &mockDashboardService{stats: dto.DashboardStatsResponse{
		TotalStudents:      12,
		AverageAttendance:  81.5,
		AssignmentsDueWeek: 2,
		ClassesToday:       3,
	}}
	app := newDashboardApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats?professor_email=Rao@Example.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                       `json:"success"`
		Data    dto.DashboardStatsResponse `json:"data"`
	}
	decodeAssistantBody(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, svc.stats, body.Data)
	require.Equal(t, "rao@example.edu", svc.lastEmail)
}

func TestDashboardHandler_StatsMissingEmail(t *testing.T) {
	app := newDashboardApp(&mockDashboardService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardHandler_StatsError(t *testing.T) {
	app := newDashboardApp(&mockDashboardService{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats?professor_email=rao@example.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

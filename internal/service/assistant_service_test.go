package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/models"
	"github.com/profboard/profboard-go-api/internal/service"
	"github.com/profboard/profboard-go-api/pkg/ai"
)

type fakeProfessorRepo struct {
	professor models.Professor
	err       error
	calls     int
}

func (f *fakeProfessorRepo) GetByEmail(_ context.Context, _ string) (models.Professor, error) {
	f.calls++
	return f.professor, f.err
}

func (f *fakeProfessorRepo) Create(_ context.Context, _ *models.Professor) error {
	return errors.New("not implemented")
}

type fakeStudentRepo struct {
	students []models.Student
	err      error
	calls    int
}

func (f *fakeStudentRepo) ListByProfessor(_ context.Context, _ string) ([]models.Student, error) {
	f.calls++
	return f.students, f.err
}

func (f *fakeStudentRepo) GetByID(_ context.Context, _ uint) (models.Student, error) {
	return models.Student{}, errors.New("not implemented")
}

func (f *fakeStudentRepo) Create(_ context.Context, _ *models.Student) error {
	return errors.New("not implemented")
}

type fakeAssignmentRepo struct {
	assignments []models.Assignment
	dueBetween  []models.Assignment
	err         error
	calls       int
}

func (f *fakeAssignmentRepo) ListByProfessor(_ context.Context, _ string) ([]models.Assignment, error) {
	f.calls++
	return f.assignments, f.err
}

func (f *fakeAssignmentRepo) ListDueBetween(_ context.Context, _ string, _, _ time.Time) ([]models.Assignment, error) {
	return f.dueBetween, f.err
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, _ uint) (models.Assignment, error) {
	return models.Assignment{}, errors.New("not implemented")
}

func (f *fakeAssignmentRepo) Create(_ context.Context, _ *models.Assignment) error {
	return errors.New("not implemented")
}

func (f *fakeAssignmentRepo) Update(_ context.Context, _ *models.Assignment) error {
	return errors.New("not implemented")
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, _ uint) error {
	return errors.New("not implemented")
}

type fakeAttendanceRepo struct {
	records []models.AttendanceRecord
	since   []models.AttendanceRecord
	err     error
	calls   int
}

func (f *fakeAttendanceRepo) ListByProfessor(_ context.Context, _ string) ([]models.AttendanceRecord, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeAttendanceRepo) ListSince(_ context.Context, _ string, _ time.Time) ([]models.AttendanceRecord, error) {
	return f.since, f.err
}

func (f *fakeAttendanceRepo) Create(_ context.Context, _ *models.AttendanceRecord) error {
	return errors.New("not implemented")
}

type stubResponder struct {
	reply string
	err   error
	calls int
	last  ai.Exchange
}

func (s *stubResponder) Respond(_ context.Context, exchange ai.Exchange) (string, error) {
	s.calls++
	s.last = exchange
	return s.reply, s.err
}

type assistantFixture struct {
	professors  *fakeProfessorRepo
	students    *fakeStudentRepo
	assignments *fakeAssignmentRepo
	attendance  *fakeAttendanceRepo
	responder   *stubResponder
	service     service.AssistantService
}

func newAssistantFixture() *assistantFixture {
	f := &assistantFixture{
		professors:  &fakeProfessorRepo{professor: models.Professor{Name: "Dr. Rao", Email: "rao@example.edu"}},
		students:    &fakeStudentRepo{},
		assignments: &fakeAssignmentRepo{},
		attendance:  &fakeAttendanceRepo{},
		responder:   &stubResponder{},
	}
	f.service = service.NewAssistantService(
		f.professors,
		f.students,
		f.assignments,
		f.attendance,
		f.responder,
		zerolog.New(io.Discard),
	)
	return f
}

func (f *assistantFixture) respond(t *testing.T, message string) dto.AssistantResponse {
	t.Helper()

	resp, err := f.service.Respond(context.Background(), dto.AssistantRequest{
		Message:        message,
		ProfessorEmail: "rao@example.edu",
	})
	require.NoError(t, err)
	return resp
}

func TestAssistantRespond_EmptyMessage(t *testing.T) {
	fixture := newAssistantFixture()

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := fixture.service.Respond(context.Background(), dto.AssistantRequest{
			Message:        message,
			ProfessorEmail: "rao@example.edu",
		})
		require.ErrorIs(t, err, service.ErrEmptyMessage)
	}

	require.Zero(t, fixture.professors.calls)
	require.Zero(t, fixture.students.calls)
	require.Zero(t, fixture.assignments.calls)
	require.Zero(t, fixture.attendance.calls)
	require.Zero(t, fixture.responder.calls)
}

func TestAssistantRespond_SendEmailIntent(t *testing.T) {
	fixture := newAssistantFixture()

	resp := fixture.respond(t, "Can you SEND EMAIL to my batch?")
	require.Equal(t, "Sure. Who should receive the email, and what would you like it to say?", resp.Response)
	require.Zero(t, fixture.responder.calls)
}

func TestAssistantRespond_SendReminderIntent(t *testing.T) {
	fixture := newAssistantFixture()

	resp := fixture.respond(t, "please send reminder about the quiz")
	require.Equal(t, "Okay, I will send a reminder to your students.", resp.Response)
}

func TestAssistantRespond_MarkAttendanceIntent(t *testing.T) {
	fixture := newAssistantFixture()

	resp := fixture.respond(t, "mark attendance for today")
	require.Equal(t, "Attendance has been noted for today's class.", resp.Response)
}

func TestAssistantRespond_AttendanceBelowThreshold(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.attendance.records = []models.AttendanceRecord{
		{StudentName: "Asha Verma", RollNumber: "CS101", AttendancePercentage: 62.5},
		{StudentName: "Rahul Mehta", RollNumber: "CS102", AttendancePercentage: 75},
		{StudentName: "Divya Nair", RollNumber: "CS103", AttendancePercentage: 74.9},
		{StudentName: "Karan Shah", RollNumber: "CS104", AttendancePercentage: 90},
	}

	resp := fixture.respond(t, "list students with attendance below 75%")
	require.Equal(t, "Asha Verma (CS101 - 62.5%)\nDivya Nair (CS103 - 74.9%)", resp.Response)
	require.Zero(t, fixture.responder.calls)
}

func TestAssistantRespond_AttendanceBelowBoundaryExcluded(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.attendance.records = []models.AttendanceRecord{
		{StudentName: "Rahul Mehta", RollNumber: "CS102", AttendancePercentage: 75},
	}

	resp := fixture.respond(t, "students with attendance below 75%")
	require.Equal(t, "No students found with attendance below the specified threshold.", resp.Response)
}

func TestAssistantRespond_AttendanceBelowNoContext(t *testing.T) {
	fixture := newAssistantFixture()

	resp, err := fixture.service.Respond(context.Background(), dto.AssistantRequest{
		Message: "list students with attendance below 75%",
	})
	require.NoError(t, err)
	require.Equal(t, "No students found with attendance below the specified threshold.", resp.Response)
	require.Zero(t, fixture.attendance.calls)
}

func TestAssistantRespond_AssignmentsDueThisWeek(t *testing.T) {
	fixture := newAssistantFixture()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	fixture.assignments.assignments = []models.Assignment{
		{Title: "Graph Algorithms", DueDate: today.AddDate(0, 0, 2).Add(10 * time.Hour)},
		{Title: "Old Homework", DueDate: today.AddDate(0, 0, -1)},
		{Title: "Compilers Project", DueDate: today.AddDate(0, 0, 7)},
		{Title: "Next Month Essay", DueDate: today.AddDate(0, 1, 0)},
	}

	resp := fixture.respond(t, "show assignments due this week")
	expected := "Graph Algorithms (Due: " + fixture.assignments.assignments[0].DueDate.Format("Jan 2, 2006") + ")\n" +
		"Compilers Project (Due: " + fixture.assignments.assignments[2].DueDate.Format("Jan 2, 2006") + ")"
	require.Equal(t, expected, resp.Response)
}

func TestAssistantRespond_AssignmentsDueThisWeekEmpty(t *testing.T) {
	fixture := newAssistantFixture()

	resp := fixture.respond(t, "show assignments due this week")
	require.Equal(t, "No assignments are due this week.", resp.Response)
}

func TestAssistantRespond_StudentsWhoHaveNotSubmitted(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.students.students = []models.Student{
		{Name: "Asha Verma", RollNumber: "CS101"},
		{Name: "Rahul Mehta", RollNumber: "CS102"},
		{Name: "Divya Nair", RollNumber: "CS103"},
	}
	fixture.assignments.assignments = []models.Assignment{
		{Title: "Graph Algorithms", SubmittedBy: datatypes.NewJSONSlice([]string{"CS102"})},
	}

	resp := fixture.respond(t, `students who haven't submitted "Graph Algorithms"?`)
	require.Equal(t, "Asha Verma (CS101)\nDivya Nair (CS103)", resp.Response)
}

func TestAssistantRespond_StudentsWhoHaveNotSubmittedAllDone(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.students.students = []models.Student{
		{Name: "Asha Verma", RollNumber: "CS101"},
	}
	fixture.assignments.assignments = []models.Assignment{
		{Title: "Graph Algorithms", SubmittedBy: datatypes.NewJSONSlice([]string{"cs101"})},
	}

	resp := fixture.respond(t, "students who havent submitted graph algorithms")
	require.Equal(t, `All students have submitted "Graph Algorithms".`, resp.Response)
}

func TestAssistantRespond_StudentsWhoHaveNotSubmittedUnknownTitle(t *testing.T) {
	fixture := newAssistantFixture()

	resp := fixture.respond(t, "students who haven't submitted Quantum Homework")
	require.Equal(t, `I couldn't find an assignment called "Quantum Homework".`, resp.Response)
}

func TestAssistantRespond_IntentOrderFirstMatchWins(t *testing.T) {
	fixture := newAssistantFixture()

	// Mentions both an email intent and an attendance query; the earlier table entry wins.
	resp := fixture.respond(t, "send email to students with attendance below 50%")
	require.Equal(t, "Sure. Who should receive the email, and what would you like it to say?", resp.Response)
}

func TestAssistantRespond_CompletionFallback(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.responder.reply = "Hi there!"

	resp := fixture.respond(t, "hello")
	require.Equal(t, "Hi there!", resp.Response)
	require.Equal(t, 1, fixture.responder.calls)
	require.Equal(t, "hello", fixture.responder.last.UserMessage)
	require.Contains(t, fixture.responder.last.SystemPrompt, "AI assistant for an educational platform")
}

func TestAssistantRespond_CompletionPromptCarriesContext(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.responder.reply = "Your class has two students."
	fixture.students.students = []models.Student{
		{Name: "Asha Verma", RollNumber: "CS101"},
		{Name: "Rahul Mehta", RollNumber: "CS102"},
	}

	fixture.respond(t, "how big is my class?")
	require.Contains(t, fixture.responder.last.SystemPrompt, "Students")
	require.Contains(t, fixture.responder.last.SystemPrompt, "Asha Verma")
	require.Contains(t, fixture.responder.last.SystemPrompt, "Professor profile")
}

func TestAssistantRespond_CompletionEmptyReplyFallsBack(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.responder.reply = "   "

	resp := fixture.respond(t, "hello")
	require.Equal(t, "I'm not sure how to respond.", resp.Response)
}

func TestAssistantRespond_CompletionUpstreamError(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.responder.err = errors.New("rate limited")

	_, err := fixture.service.Respond(context.Background(), dto.AssistantRequest{
		Message:        "hello",
		ProfessorEmail: "rao@example.edu",
	})
	require.ErrorIs(t, err, service.ErrAssistantUpstream)
	require.Contains(t, err.Error(), "rate limited")
}

func TestAssistantRespond_ContextFetchFailuresAreRecovered(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.responder.reply = "Happy to help."
	fixture.professors.err = errors.New("connection refused")
	fixture.students.err = errors.New("connection refused")
	fixture.assignments.err = errors.New("connection refused")
	fixture.attendance.err = errors.New("connection refused")

	resp := fixture.respond(t, "hello")
	require.Equal(t, "Happy to help.", resp.Response)
	require.NotContains(t, fixture.responder.last.SystemPrompt, "Professor profile")
}

func TestAssistantRespond_Idempotent(t *testing.T) {
	fixture := newAssistantFixture()
	fixture.attendance.records = []models.AttendanceRecord{
		{StudentName: "Asha Verma", RollNumber: "CS101", AttendancePercentage: 40},
	}

	first := fixture.respond(t, "students with attendance below 75%")
	second := fixture.respond(t, "students with attendance below 75%")
	require.Equal(t, first.Response, second.Response)
}

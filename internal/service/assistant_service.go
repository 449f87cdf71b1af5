package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/models"
	"github.com/profboard/profboard-go-api/internal/observability"
	"github.com/profboard/profboard-go-api/internal/repository"
	"github.com/profboard/profboard-go-api/pkg/ai"
)

// ErrEmptyMessage indicates the request carried no utterance to answer.
var ErrEmptyMessage = errors.New("message is required")

// ErrAssistantUpstream indicates the completion provider rejected or failed the call.
var ErrAssistantUpstream = errors.New("assistant upstream error")

const assistantBasePrompt = "You are an AI assistant for an educational platform. " +
	"You help professors with information about students, classes, and assignments. " +
	"Keep responses concise, professional, and focused on educational context."

const assistantFallbackReply = "I'm not sure how to respond."

// AssistantService answers professor utterances, locally when an intent matches and
// via the completion provider otherwise.
type AssistantService interface {
	Respond(ctx context.Context, request dto.AssistantRequest) (dto.AssistantResponse, error)
}

// professorContext is the per-request snapshot of a professor's rows. Sections left
// empty after a failed fetch are simply omitted from the prompt.
type professorContext struct {
	Profile     *models.Professor
	Students    []models.Student
	Assignments []models.Assignment
	Attendance  []models.AttendanceRecord
}

// assistantIntent pairs a matcher with a local handler. Matchers return capture groups,
// or nil when the utterance does not match.
type assistantIntent struct {
	name   string
	match  func(message string) []string
	handle func(pc professorContext, captures []string, now time.Time) string
}

type assistantService struct {
	professors  repository.ProfessorRepository
	students    repository.StudentRepository
	assignments repository.AssignmentRepository
	attendance  repository.AttendanceRepository
	responder   ai.Responder
	intents     []assistantIntent
	logger      zerolog.Logger
	tracer      trace.Tracer
	now         func() time.Time
}

// NewAssistantService builds the assistant with the default intent table.
func NewAssistantService(
	professors repository.ProfessorRepository,
	students repository.StudentRepository,
	assignments repository.AssignmentRepository,
	attendance repository.AttendanceRepository,
	responder ai.Responder,
	logger zerolog.Logger,
) AssistantService {
	return &assistantService{
		professors:  professors,
		students:    students,
		assignments: assignments,
		attendance:  attendance,
		responder:   responder,
		intents:     defaultAssistantIntents(),
		logger:      logger.With().Str("component", "assistant_service").Logger(),
		tracer:      otel.Tracer("github.com/profboard/profboard-go-api/internal/service/assistant"),
		now:         time.Now,
	}
}

func (s *assistantService) Respond(ctx context.Context, request dto.AssistantRequest) (dto.AssistantResponse, error) {
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return dto.AssistantResponse{}, ErrEmptyMessage
	}

	spanCtx, span := s.tracer.Start(ctx, "assistant.respond", trace.WithAttributes(
		attribute.Bool("assistant.context_enriched", request.ProfessorEmail != ""),
	))
	defer span.End()

	pc := s.fetchProfessorContext(spanCtx, strings.ToLower(strings.TrimSpace(request.ProfessorEmail)))

	now := s.now()
	for _, intent := range s.intents {
		captures := intent.match(message)
		if captures == nil {
			continue
		}

		span.SetAttributes(attribute.String("assistant.intent", intent.name))
		observability.AssistantRequests().WithLabelValues(intent.name).Inc()
		s.logger.Debug().Str("intent", intent.name).Msg("intent matched")

		return dto.AssistantResponse{Response: intent.handle(pc, captures, now)}, nil
	}

	observability.AssistantRequests().WithLabelValues("completion").Inc()

	reply, err := s.responder.Respond(spanCtx, ai.Exchange{
		SystemPrompt: s.buildSystemPrompt(pc),
		UserMessage:  message,
	})
	if err != nil {
		span.RecordError(err)
		return dto.AssistantResponse{}, fmt.Errorf("%w: %s", ErrAssistantUpstream, err)
	}

	if strings.TrimSpace(reply) == "" {
		reply = assistantFallbackReply
	}

	return dto.AssistantResponse{Response: strings.TrimSpace(reply)}, nil
}

// fetchProfessorContext issues the four scoped reads concurrently. Every failure is
// recovered: the section is logged and left empty, the request carries on.
func (s *assistantService) fetchProfessorContext(ctx context.Context, professorEmail string) professorContext {
	var pc professorContext
	if professorEmail == "" {
		return pc
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		profile, err := s.professors.GetByEmail(ctx, professorEmail)
		if err != nil {
			s.logger.Warn().Err(err).Str("section", "profile").Msg("context fetch failed")
			return
		}
		pc.Profile = &profile
	}()

	go func() {
		defer wg.Done()
		students, err := s.students.ListByProfessor(ctx, professorEmail)
		if err != nil {
			s.logger.Warn().Err(err).Str("section", "students").Msg("context fetch failed")
			return
		}
		pc.Students = students
	}()

	go func() {
		defer wg.Done()
		assignments, err := s.assignments.ListByProfessor(ctx, professorEmail)
		if err != nil {
			s.logger.Warn().Err(err).Str("section", "assignments").Msg("context fetch failed")
			return
		}
		pc.Assignments = assignments
	}()

	go func() {
		defer wg.Done()
		attendance, err := s.attendance.ListByProfessor(ctx, professorEmail)
		if err != nil {
			s.logger.Warn().Err(err).Str("section", "attendance").Msg("context fetch failed")
			return
		}
		pc.Attendance = attendance
	}()

	wg.Wait()
	return pc
}

// buildSystemPrompt appends each fetched section as a labeled JSON dump. Only the
// completion path reads the serialized prompt; intent handlers use the raw rows.
func (s *assistantService) buildSystemPrompt(pc professorContext) string {
	var builder strings.Builder
	builder.WriteString(assistantBasePrompt)

	appendSection := func(label string, value interface{}) {
		payload, err := json.Marshal(value)
		if err != nil {
			s.logger.Warn().Err(err).Str("section", label).Msg("failed to serialize prompt section")
			return
		}
		builder.WriteString("\n\n")
		builder.WriteString(label)
		builder.WriteString(":\n")
		builder.Write(payload)
	}

	if pc.Profile != nil {
		appendSection("Professor profile", pc.Profile)
	}
	if len(pc.Students) > 0 {
		appendSection("Students", pc.Students)
	}
	if len(pc.Assignments) > 0 {
		appendSection("Assignments", pc.Assignments)
	}
	if len(pc.Attendance) > 0 {
		appendSection("Attendance records", pc.Attendance)
	}

	return builder.String()
}

var (
	attendanceBelowPattern = regexp.MustCompile(`(?i)attendance\s+below\s+(\d+)\s*%`)
	notSubmittedPattern    = regexp.MustCompile(`(?i)students\s+who\s+haven'?t\s+submitted\s+(.+)`)
)

// defaultAssistantIntents returns the ordered intent table. Order matters: the first
// matching entry wins and later entries are never consulted.
func defaultAssistantIntents() []assistantIntent {
	return []assistantIntent{
		{
			name:   "send_email",
			match:  containsMatcher("send email"),
			handle: func(professorContext, []string, time.Time) string {
				return "Sure. Who should receive the email, and what would you like it to say?"
			},
		},
		{
			name:   "send_reminder",
			match:  containsMatcher("send reminder"),
			handle: func(professorContext, []string, time.Time) string {
				return "Okay, I will send a reminder to your students."
			},
		},
		{
			name:   "mark_attendance",
			match:  containsMatcher("mark attendance"),
			handle: func(professorContext, []string, time.Time) string {
				return "Attendance has been noted for today's class."
			},
		},
		{
			name:   "attendance_below",
			match:  regexMatcher(attendanceBelowPattern),
			handle: handleAttendanceBelow,
		},
		{
			name:   "assignments_due_week",
			match:  containsMatcher("show assignments due this week"),
			handle: handleAssignmentsDueThisWeek,
		},
		{
			name:   "not_submitted",
			match:  regexMatcher(notSubmittedPattern),
			handle: handleNotSubmitted,
		},
	}
}

func containsMatcher(phrase string) func(string) []string {
	return func(message string) []string {
		if strings.Contains(strings.ToLower(message), phrase) {
			return []string{}
		}
		return nil
	}
}

func regexMatcher(pattern *regexp.Regexp) func(string) []string {
	return func(message string) []string {
		matches := pattern.FindStringSubmatch(message)
		if matches == nil {
			return nil
		}
		return matches[1:]
	}
}

func handleAttendanceBelow(pc professorContext, captures []string, _ time.Time) string {
	// The pattern only captures digits, so parsing cannot fail here.
	threshold, _ := strconv.Atoi(captures[0])

	var lines []string
	for _, record := range pc.Attendance {
		if record.AttendancePercentage < float64(threshold) {
			lines = append(lines, fmt.Sprintf("%s (%s - %s%%)",
				record.StudentName, record.RollNumber, formatPercentage(record.AttendancePercentage)))
		}
	}

	if len(lines) == 0 {
		return "No students found with attendance below the specified threshold."
	}

	return strings.Join(lines, "\n")
}

func handleAssignmentsDueThisWeek(pc professorContext, _ []string, now time.Time) string {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Inclusive window: an assignment due exactly seven days out still counts.
	end := start.AddDate(0, 0, 8).Add(-time.Nanosecond)

	var lines []string
	for _, assignment := range pc.Assignments {
		if assignment.DueDate.Before(start) || assignment.DueDate.After(end) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (Due: %s)",
			assignment.Title, assignment.DueDate.Format("Jan 2, 2006")))
	}

	if len(lines) == 0 {
		return "No assignments are due this week."
	}

	return strings.Join(lines, "\n")
}

func handleNotSubmitted(pc professorContext, captures []string, _ time.Time) string {
	title := strings.Trim(strings.TrimSpace(captures[0]), `"?.!`)

	var target *models.Assignment
	for i := range pc.Assignments {
		if strings.EqualFold(pc.Assignments[i].Title, title) {
			target = &pc.Assignments[i]
			break
		}
	}

	if target == nil {
		return fmt.Sprintf("I couldn't find an assignment called \"%s\".", title)
	}

	var lines []string
	for _, student := range pc.Students {
		if !target.HasSubmission(student.RollNumber) {
			lines = append(lines, fmt.Sprintf("%s (%s)", student.Name, student.RollNumber))
		}
	}

	if len(lines) == 0 {
		return fmt.Sprintf("All students have submitted \"%s\".", target.Title)
	}

	return strings.Join(lines, "\n")
}

func formatPercentage(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

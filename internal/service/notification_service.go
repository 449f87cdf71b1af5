package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/models"
	"github.com/profboard/profboard-go-api/internal/repository"
)

// NotificationService records outbound messages and hands them to the delivery
// brokers. Actual email/whatsapp/sms delivery happens in a separate worker; this
// service only persists the record and publishes the event.
type NotificationService interface {
	Send(ctx context.Context, payload dto.NotificationCreateRequest) (dto.NotificationResponse, error)
	List(ctx context.Context, professorEmail string, limit, offset int) ([]dto.NotificationResponse, error)
}

type notificationEvent struct {
	Source       string                   `json:"source"`
	Notification dto.NotificationResponse `json:"notification"`
	SentAt       time.Time                `json:"sent_at"`
}

type notificationService struct {
	repo        repository.NotificationRepository
	redis       *redis.Client
	redisStream string
	nats        *nats.Conn
	natsSubject string
	validator   *validator.Validate
	logger      zerolog.Logger
	tracer      trace.Tracer
	sanitizer   *bluemonday.Policy
	nodeID      string
}

// NewNotificationService constructs a notification service. Both brokers are
// optional; with neither configured the record is stored and delivery waits for
// an operator to drain it.
func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client, natsConn *nats.Conn, validate *validator.Validate, logger zerolog.Logger) NotificationService {
	return &notificationService{
		repo:        repo,
		redis:       redisClient,
		redisStream: "profboard:notifications",
		nats:        natsConn,
		natsSubject: "profboard.notifications",
		validator:   validate,
		logger:      logger.With().Str("component", "notification_service").Logger(),
		tracer:      otel.Tracer("github.com/profboard/profboard-go-api/internal/service/notification"),
		sanitizer:   bluemonday.StrictPolicy(),
		nodeID:      uuid.NewString(),
	}
}

func (s *notificationService) Send(ctx context.Context, payload dto.NotificationCreateRequest) (dto.NotificationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.NotificationResponse{}, err
	}

	cleanMessage := strings.TrimSpace(s.sanitizer.Sanitize(payload.Message))
	if cleanMessage == "" {
		return dto.NotificationResponse{}, errors.New("notification message empty after sanitization")
	}

	attrs := []attribute.KeyValue{
		attribute.String("notification.professor_email", payload.ProfessorEmail),
		attribute.String("notification.type", payload.Type),
	}

	spanCtx, span := s.tracer.Start(ctx, "notifications.send", trace.WithAttributes(attrs...))
	defer span.End()

	model := models.Notification{
		Type:           payload.Type,
		Subject:        strings.TrimSpace(s.sanitizer.Sanitize(payload.Subject)),
		Message:        cleanMessage,
		Status:         models.NotificationStatusPending,
		ProfessorEmail: payload.ProfessorEmail,
		SentAt:         time.Now().UTC(),
	}

	if err := s.repo.Create(spanCtx, &model); err != nil {
		span.RecordError(err)
		return dto.NotificationResponse{}, err
	}

	response := dto.NewNotificationResponse(model)
	if err := s.publish(spanCtx, response); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish notification to broker")
	}

	return response, nil
}

func (s *notificationService) List(ctx context.Context, professorEmail string, limit, offset int) ([]dto.NotificationResponse, error) {
	if strings.TrimSpace(professorEmail) == "" {
		return nil, errors.New("professor email is required")
	}

	notifications, err := s.repo.ListByProfessor(ctx, professorEmail, limit, offset)
	if err != nil {
		return nil, err
	}

	return dto.NewNotificationResponseSlice(notifications), nil
}

func (s *notificationService) publish(ctx context.Context, notification dto.NotificationResponse) error {
	event := notificationEvent{
		Source:       s.nodeID,
		Notification: notification,
		SentAt:       time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if s.redis != nil {
		if err := s.redis.Publish(ctx, s.redisStream, payload).Err(); err != nil {
			return err
		}
	}

	if s.nats != nil {
		if err := s.nats.Publish(s.natsSubject, payload); err != nil {
			return err
		}
	}

	return nil
}

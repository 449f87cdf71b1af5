package service_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/models"
	"github.com/profboard/profboard-go-api/internal/repository"
	"github.com/profboard/profboard-go-api/internal/service"
)

func setupNotificationService(t *testing.T, redisClient *redis.Client) (service.NotificationService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:notifications_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Notification{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := service.NewNotificationService(
		repository.NewNotificationRepository(db),
		redisClient,
		nil,
		validate,
		zerolog.New(io.Discard),
	)

	return svc, db
}

func TestNotificationService_Send(t *testing.T) {
	svc, db := setupNotificationService(t, nil)

	resp, err := svc.Send(context.Background(), dto.NotificationCreateRequest{
		Type:           models.NotificationTypeEmail,
		Subject:        "Quiz tomorrow",
		Message:        "Please revise chapters 3 and 4.",
		ProfessorEmail: "rao@example.edu",
	})
	require.NoError(t, err)
	require.NotZero(t, resp.ID)
	require.Equal(t, models.NotificationStatusPending, resp.Status)
	require.Equal(t, "Please revise chapters 3 and 4.", resp.Message)

	var stored models.Notification
	require.NoError(t, db.First(&stored, resp.ID).Error)
	require.Equal(t, "rao@example.edu", stored.ProfessorEmail)
}

func TestNotificationService_SendStripsMarkup(t *testing.T) {
	svc, _ := setupNotificationService(t, nil)

	resp, err := svc.Send(context.Background(), dto.NotificationCreateRequest{
		Type:           models.NotificationTypeEmail,
		Message:        `<b>Reminder</b><script>alert("x")</script>`,
		ProfessorEmail: "rao@example.edu",
	})
	require.NoError(t, err)
	require.Equal(t, "Reminder", resp.Message)
}

func TestNotificationService_SendRejectsMarkupOnlyMessage(t *testing.T) {
	svc, _ := setupNotificationService(t, nil)

	_, err := svc.Send(context.Background(), dto.NotificationCreateRequest{
		Type:           models.NotificationTypeEmail,
		Message:        `<script>alert("x")</script>`,
		ProfessorEmail: "rao@example.edu",
	})
	require.Error(t, err)
}

func TestNotificationService_SendValidation(t *testing.T) {
	svc, _ := setupNotificationService(t, nil)

	cases := []dto.NotificationCreateRequest{
		{Type: "pigeon", Message: "hi", ProfessorEmail: "rao@example.edu"},
		{Type: models.NotificationTypeEmail, Message: "", ProfessorEmail: "rao@example.edu"},
		{Type: models.NotificationTypeEmail, Message: "hi", ProfessorEmail: "not-an-email"},
	}
	for _, payload := range cases {
		_, err := svc.Send(context.Background(), payload)
		require.Error(t, err)
	}
}

func TestNotificationService_SendPublishesEvent(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	svc, _ := setupNotificationService(t, client)

	sub := client.Subscribe(context.Background(), "profboard:notifications")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), dto.NotificationCreateRequest{
		Type:           models.NotificationTypeWhatsApp,
		Message:        "Class moved to room 204.",
		ProfessorEmail: "rao@example.edu",
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		require.Contains(t, msg.Payload, "Class moved to room 204.")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a published notification event")
	}
}

func TestNotificationService_List(t *testing.T) {
	svc, db := setupNotificationService(t, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Notification{
			Type:           models.NotificationTypeEmail,
			Message:        fmt.Sprintf("message %d", i),
			Status:         models.NotificationStatusSent,
			ProfessorEmail: "rao@example.edu",
			SentAt:         time.Now().UTC(),
		}).Error)
	}
	require.NoError(t, db.Create(&models.Notification{
		Type:           models.NotificationTypeEmail,
		Message:        "someone else's",
		Status:         models.NotificationStatusSent,
		ProfessorEmail: "other@example.edu",
		SentAt:         time.Now().UTC(),
	}).Error)

	notifications, err := svc.List(context.Background(), "rao@example.edu", 10, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
}

func TestNotificationService_ListRequiresEmail(t *testing.T) {
	svc, _ := setupNotificationService(t, nil)

	_, err := svc.List(context.Background(), "  ", 10, 0)
	require.Error(t, err)
}

package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	completionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "profboard",
		Subsystem: "ai",
		Name:      "completion_duration_seconds",
		Help:      "Duration of assistant completion requests",
	}, []string{"model"})

	completionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "profboard",
		Subsystem: "ai",
		Name:      "completion_failures_total",
		Help:      "Number of assistant completion failures",
	}, []string{"model"})
)

// OpenAIConfig defines configuration options for the OpenAI responder.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAIResponder implements Responder against the OpenAI chat completion API.
type OpenAIResponder struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAIResponder builds a new responder using the provided configuration.
func NewOpenAIResponder(cfg OpenAIConfig) (*OpenAIResponder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 500
	}

	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}

	tracer := otel.Tracer("github.com/profboard/profboard-go-api/pkg/ai/openai")
	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	client := openai.NewClientWithConfig(config)

	return &OpenAIResponder{
		client: client,
		cfg:    cfg,
		tracer: tracer,
		logger: logger,
	}, nil
}

// Respond submits the exchange to OpenAI and returns the first completion choice, trimmed.
func (r *OpenAIResponder) Respond(parent context.Context, exchange Exchange) (string, error) {
	ctx, span := r.tracer.Start(parent, "openai.respond", trace.WithAttributes(
		attribute.String("model", r.cfg.Model),
	))
	defer span.End()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       r.cfg.Model,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: exchange.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: exchange.UserMessage,
			},
		},
	}

	resp, err := r.client.CreateChatCompletion(ctx, request)
	duration := time.Since(start)
	completionDuration.WithLabelValues(r.cfg.Model).Observe(duration.Seconds())
	if err != nil {
		completionFailures.WithLabelValues(r.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

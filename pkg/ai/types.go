package ai

import "context"

// Exchange carries one system+user message pair submitted to a completion provider.
type Exchange struct {
	SystemPrompt string
	UserMessage  string
}

// Responder describes a text-completion model that can answer a single exchange.
type Responder interface {
	Respond(ctx context.Context, exchange Exchange) (string, error)
}

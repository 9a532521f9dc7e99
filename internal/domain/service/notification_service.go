package service

import (
	"context"
	"time"
)

// MaxMulticastTokens is the largest token list a single Multicast call accepts.
const MaxMulticastTokens = 500

// PushMessage is one notification fanned out to many device tokens.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
	// TTL bounds how long the push provider keeps the message for an offline device. Zero keeps the provider default.
	TTL time.Duration
}

// PushOutcome is the delivery result for one token.
type PushOutcome struct {
	Token string
	Err   error
	// Unregistered marks a token the provider will never accept again.
	Unregistered bool
}

// NotificationService sends push notifications to devices.
type NotificationService interface {
	// Multicast returns one outcome per token, in the order of tokens.
	// An error means nothing was sent.
	Multicast(ctx context.Context, tokens []string, msg *PushMessage) ([]PushOutcome, error)
}

package services

import "context"

// ChatBackend creates conversation sessions with the text-generation
// provider. Session creation fails when credentials or configuration are
// invalid.
type ChatBackend interface {
	// NewSession starts a conversation seeded with a system instruction.
	NewSession(ctx context.Context, instruction string) (ChatSession, error)
}

// ChatSession is one stateful conversation. Send appends the user text to
// the conversation, requests a completion, and returns the raw reply.
type ChatSession interface {
	Send(ctx context.Context, text string) (string, error)
}

// ImageBackend generates an image from a text description. The returned
// string is a displayable resource reference (a data URL for providers that
// return inline bytes). Generation fails when the provider yields zero
// results or the transport fails.
type ImageBackend interface {
	Generate(ctx context.Context, description string) (string, error)
}

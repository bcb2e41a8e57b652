package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a transcript message.
type Sender string

const (
	SenderUser       Sender = "user"
	SenderLily       Sender = "lily"
	SenderSystem     Sender = "system"
	SenderRelocation Sender = "relocation"
)

// Message is one entry in a contact's transcript. A message with Loading set
// and no final text or image is a transient placeholder (typing indicator or
// pending image) and is removed or replaced by ID before the turn completes.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Loading   bool      `json:"is_loading,omitempty"`
	Error     bool      `json:"is_error,omitempty"`
}

// NewMessage creates a finalized text message with a fresh ID.
func NewMessage(sender Sender, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewErrorMessage creates an error-flagged message, used for backend and
// image-generation failures surfaced in the transcript.
func NewErrorMessage(sender Sender, text string) Message {
	m := NewMessage(sender, text)
	m.Error = true
	return m
}

// ContactID identifies a messenger contact.
type ContactID string

// Contact is the immutable configuration of one messenger contact.
// Non-responsive contacts accept messages but never answer.
type Contact struct {
	ID            ContactID `json:"id"`
	Name          string    `json:"name"`
	AvatarInitial string    `json:"avatar_initial"`
	Responsive    bool      `json:"is_responsive"`
	Description   string    `json:"description,omitempty"`
}

package chat

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewMessage(t *testing.T) {
	m := NewMessage(SenderLily, "It's... it's Lily.")

	if _, err := uuid.Parse(m.ID); err != nil {
		t.Errorf("message ID %q is not a valid UUID: %v", m.ID, err)
	}
	if m.Sender != SenderLily {
		t.Errorf("sender = %q; want %q", m.Sender, SenderLily)
	}
	if m.Text != "It's... it's Lily." {
		t.Errorf("unexpected text %q", m.Text)
	}
	if m.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
	if m.Loading || m.Error {
		t.Error("new message should not be loading or errored")
	}
}

func TestNewErrorMessage(t *testing.T) {
	m := NewErrorMessage(SenderSystem, "backend unavailable")
	if !m.Error {
		t.Error("error flag should be set")
	}
	if m.Loading {
		t.Error("error message should not be loading")
	}
}

func TestMessageIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		m := NewMessage(SenderUser, "hello")
		if seen[m.ID] {
			t.Fatalf("duplicate message ID %q", m.ID)
		}
		seen[m.ID] = true
	}
}

package scenario

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/handset/pkg/chat"
)

func TestContactByID(t *testing.T) {
	lily, ok := ContactByID(ContactLily)
	assert.True(t, ok)
	assert.Equal(t, LilyProfileName, lily.Name)
	assert.True(t, lily.Responsive)

	_, ok = ContactByID(chat.ContactID("nobody"))
	assert.False(t, ok)
}

func TestOnlyLilyIsResponsive(t *testing.T) {
	for _, c := range Contacts {
		if c.ID == ContactLily {
			assert.True(t, c.Responsive, "Lily must be responsive")
		} else {
			assert.False(t, c.Responsive, "%s must not be responsive", c.ID)
		}
	}
}

func TestRelocationScript(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 25, 0, 0, time.UTC)
	messages := RelocationScript(now, "03:00 PM")

	assert.Len(t, messages, 2)
	assert.Equal(t, chat.SenderUser, messages[0].Sender)
	assert.Equal(t, chat.SenderRelocation, messages[1].Sender)

	assert.Contains(t, messages[1].Text, "03:00 PM")
	assert.NotContains(t, messages[1].Text, "[DYNAMIC_NEXT_HOUR_TIME]")

	// Scripted history predates "now" and stays in order.
	assert.True(t, messages[0].Timestamp.Before(messages[1].Timestamp))
	assert.True(t, messages[1].Timestamp.Before(now))
}

func TestSystemInstructionEmbedsClues(t *testing.T) {
	assert.Contains(t, SystemInstruction, GalleryPIN)
	assert.Contains(t, SystemInstruction, ChuteKeypadSequence)
	assert.Contains(t, SystemInstruction, "||PART_BREAK||")
	assert.Contains(t, SystemInstruction, "[IMAGE_PROMPT:")

	// The password is discovered in the gallery, never leaked by Lily.
	assert.False(t, strings.Contains(SystemInstruction, NetworkPassword))
}

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/handset/pkg/scenario"
)

func TestBrowserStatus(t *testing.T) {
	assert.Equal(t, "Idle", browserStatus("", false))
	assert.Equal(t, "skulls.system - Locked", browserStatus("skulls.system", false))
	assert.Equal(t, "skulls.system - Unlocked", browserStatus("SKULLS.SYSTEM", true))
	assert.Equal(t, "Access Restricted", browserStatus("example.com", false))
}

func TestGalleryStatus(t *testing.T) {
	assert.Equal(t, "PIN Required", galleryStatus(false))
	assert.Equal(t, "Contents Unlocked", galleryStatus(true))
}

func TestContactStatus(t *testing.T) {
	lily, ok := scenario.ContactByID(scenario.ContactLily)
	assert.True(t, ok)
	assert.Equal(t, lily.Description, contactStatus(lily))

	// Without a description the status falls back to the chat label, and
	// Lily's speaker name replaces her roster designation.
	lily.Description = ""
	assert.Equal(t, "Chat with "+scenario.LilySpeakerName, contactStatus(lily))
}

package phone

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/handset/pkg/chat"
	"github.com/jwebster45206/handset/pkg/scenario"
)

// App titles shown in the task switcher.
const (
	messengerTitle  = "Messenger"
	galleryTitle    = "Gallery"
	browserTitle    = "Web Browser"
	calculatorTitle = "Calculator"
)

// Status strings are computed here, as pure functions of component state, so
// the registry entries cannot drift between call sites.

func galleryStatus(unlocked bool) string {
	if unlocked {
		return "Contents Unlocked"
	}
	return "PIN Required"
}

func browserStatus(url string, unlocked bool) string {
	if url == "" {
		return "Idle"
	}
	if strings.EqualFold(url, scenario.RestrictedAddress) {
		if unlocked {
			return scenario.RestrictedAddress + " - Unlocked"
		}
		return scenario.RestrictedAddress + " - Locked"
	}
	return "Access Restricted"
}

func contactStatus(c chat.Contact) string {
	if c.Description != "" {
		return c.Description
	}
	name := c.Name
	if c.ID == scenario.ContactLily {
		name = scenario.LilySpeakerName
	}
	return "Chat with " + name
}

func messengerCountStatus(n int) string {
	return fmt.Sprintf("%d messages from %s", n, scenario.LilySpeakerName)
}

func sendingImageStatus() string {
	return scenario.LilySpeakerName + " is sending an image..."
}

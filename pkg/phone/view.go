// Package phone implements the orchestration core of the simulated handset:
// the foreground view state machine, the recent-apps registry, the unlock
// gates, the per-contact chat registry, and the conversation turn sequencer.
// All mutable state is owned by a single Controller and mutated only through
// its operations.
package phone

import "time"

// View identifies the foregrounded simulated application screen. Exactly one
// View is current at any time.
type View string

const (
	ViewGameStart        View = "game_start"
	ViewIntro            View = "intro"
	ViewSystemInitiating View = "system_initiating"
	ViewInitialLoad      View = "initial_load"
	ViewHome             View = "home"
	ViewChat             View = "chat"
	ViewGalleryLocked    View = "gallery_locked"
	ViewGalleryUnlocked  View = "gallery_unlocked"
	ViewBrowser          View = "browser"
	ViewCalculator       View = "calculator"
)

// BootDelay is how long the system_initiating screen holds before
// auto-advancing to initial_load.
const BootDelay = 4 * time.Second

// bootSequence is the transition table for the strictly linear intro flow.
// The system_initiating step advances on a timer rather than a user action;
// the table still records its successor so the timer and the state machine
// agree on the path.
var bootSequence = map[View]View{
	ViewGameStart:        ViewIntro,
	ViewIntro:            ViewSystemInitiating,
	ViewSystemInitiating: ViewInitialLoad,
}

// nextBootView returns the successor of v in the linear intro flow.
func nextBootView(v View) (View, bool) {
	next, ok := bootSequence[v]
	return next, ok
}

// IsApp reports whether v is one of the five openable application views,
// i.e. the views the back action returns home from and the task switcher
// tracks.
func (v View) IsApp() bool {
	switch v {
	case ViewChat, ViewGalleryLocked, ViewGalleryUnlocked, ViewBrowser, ViewCalculator:
		return true
	}
	return false
}

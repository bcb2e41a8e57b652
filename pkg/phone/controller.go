package phone

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jwebster45206/handset/internal/services"
	"github.com/jwebster45206/handset/pkg/chat"
	"github.com/jwebster45206/handset/pkg/scenario"
)

// AppStatus reflects availability of the generative backend. api_error is a
// first-class state: the messenger icon and chat view are unreachable for
// the rest of the session, everything else keeps working.
type AppStatus string

const (
	StatusUninitialized AppStatus = "uninitialized"
	StatusInitializing  AppStatus = "initializing_api"
	StatusAPIReady      AppStatus = "api_ready"
	StatusAPIError      AppStatus = "api_error"
)

// Controller owns all mutable application state and is the single source of
// truth for the presentation layer. Operations interleave only at explicit
// suspension points (the boot timer, typing delays, backend calls); every
// transcript mutation happens under the controller lock and placeholders are
// removed by identity, never by position.
type Controller struct {
	mu  sync.Mutex
	log *slog.Logger

	backend services.ChatBackend
	images  services.ImageBackend
	locale  string

	view         View
	status       AppStatus
	overview     Overview
	overviewOpen bool

	transcripts   map[chat.ContactID][]chat.Message
	activeContact chat.ContactID
	responsive    bool

	session      services.ChatSession
	sessionReady bool // one-shot init flag for the Lily session
	replying     bool // single-flight guard: one turn per contact
	typing       bool
	chatErr      string

	galleryGate     Gate
	networkGate     Gate
	chuteGate       Gate
	galleryUnlocked bool
	networkUnlocked bool
	chuteReleased   bool

	browserURL  string
	calcDisplay string

	relocationETA string

	bootTimer *time.Timer
	closed    bool

	notify func()

	// Suspension points are injectable so tests run without real timers.
	sleep      func(time.Duration)
	thinkPause func() time.Duration
	bootHold   time.Duration

	// turns tracks in-flight reply and image tasks.
	turns sync.WaitGroup
}

// New creates a controller in the game_start view. A nil backend means the
// credential was absent or invalid; StartExperience will then land in
// api_error.
func New(backend services.ChatBackend, images services.ImageBackend, locale string, log *slog.Logger) *Controller {
	c := &Controller{
		log:           log,
		backend:       backend,
		images:        images,
		locale:        locale,
		view:          ViewGameStart,
		status:        StatusUninitialized,
		activeContact: scenario.ContactLily,
		responsive:    true,
		galleryGate:   NewGate(scenario.GalleryPIN),
		networkGate:   NewGate(scenario.NetworkPassword),
		chuteGate:     NewGate(scenario.ChuteKeypadSequence),
		calcDisplay:   "0",
		relocationETA: "Calculating...",
		sleep:         time.Sleep,
		bootHold:      BootDelay,
	}
	c.thinkPause = func() time.Duration {
		return 300*time.Millisecond + time.Duration(rand.Int63n(int64(400*time.Millisecond)))
	}
	c.transcripts = map[chat.ContactID][]chat.Message{}
	for _, contact := range scenario.Contacts {
		c.transcripts[contact.ID] = nil
	}
	return c
}

// OnChange registers the presentation callback, invoked after every state
// mutation.
func (c *Controller) OnChange(fn func()) {
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

// Close tears the controller down. A pending boot timer is cancelled so the
// auto-advance cannot fire after teardown.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	if c.bootTimer != nil {
		c.bootTimer.Stop()
		c.bootTimer = nil
	}
	c.mu.Unlock()
}

func (c *Controller) notifyChanged() {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// State is a point-in-time copy of everything the presentation layer
// renders.
type State struct {
	View         View
	Status       AppStatus
	OverviewOpen bool
	Overview     []OverviewApp

	ActiveContact chat.ContactID
	Responsive    bool
	Transcript    []chat.Message
	Typing        bool
	Replying      bool
	ChatError     string

	GalleryUnlocked   bool
	NetworkUnlocked   bool
	ChuteReleased     bool
	BrowserURL        string
	CalculatorDisplay string
	RelocationETA     string
}

// Snapshot returns a copy of the current application state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	transcript := make([]chat.Message, len(c.transcripts[c.activeContact]))
	copy(transcript, c.transcripts[c.activeContact])

	return State{
		View:              c.view,
		Status:            c.status,
		OverviewOpen:      c.overviewOpen,
		Overview:          c.overview.Apps(),
		ActiveContact:     c.activeContact,
		Responsive:        c.responsive,
		Transcript:        transcript,
		Typing:            c.typing,
		Replying:          c.replying,
		ChatError:         c.chatErr,
		GalleryUnlocked:   c.galleryUnlocked,
		NetworkUnlocked:   c.networkUnlocked,
		ChuteReleased:     c.chuteReleased,
		BrowserURL:        c.browserURL,
		CalculatorDisplay: c.calcDisplay,
		RelocationETA:     c.relocationETA,
	}
}

// Transcript returns a copy of one contact's transcript.
func (c *Controller) Transcript(id chat.ContactID) []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	transcript := make([]chat.Message, len(c.transcripts[id]))
	copy(transcript, c.transcripts[id])
	return transcript
}

// Advance drives the linear intro flow one step: game_start to intro, intro
// to system_initiating. Entering system_initiating arms the auto-advance
// timer; any other view is a no-op.
func (c *Controller) Advance() {
	c.mu.Lock()
	next, ok := nextBootView(c.view)
	if !ok || c.view == ViewSystemInitiating {
		c.mu.Unlock()
		return
	}
	c.view = next
	if next == ViewSystemInitiating {
		c.armBootTimerLocked()
	}
	c.mu.Unlock()
	c.notifyChanged()
}

func (c *Controller) armBootTimerLocked() {
	if c.bootTimer != nil {
		c.bootTimer.Stop()
	}
	c.bootTimer = time.AfterFunc(c.bootHold, func() {
		c.mu.Lock()
		fire := !c.closed && c.view == ViewSystemInitiating
		if fire {
			c.view = ViewInitialLoad
		}
		c.bootTimer = nil
		c.mu.Unlock()
		if fire {
			c.notifyChanged()
		}
	})
}

// StartExperience initializes the generative backend from the initial_load
// screen. A missing backend yields api_error; the handset still boots to
// home with the messenger disabled. On success the relocation script is
// seeded with the pickup ETA.
func (c *Controller) StartExperience(ctx context.Context) {
	c.mu.Lock()
	if c.view != ViewInitialLoad {
		c.mu.Unlock()
		return
	}
	c.status = StatusInitializing

	if c.backend == nil {
		c.status = StatusAPIError
		c.log.Warn("generative backend unavailable, messenger disabled")
	} else {
		c.status = StatusAPIReady
		now := time.Now()
		c.relocationETA = scenario.NextHourETA(now, c.locale)
		c.transcripts[scenario.ContactRelocation] = scenario.RelocationScript(now, c.relocationETA)
		c.transcripts[scenario.ContactSubject32] = nil
		c.transcripts[scenario.ContactSubject33] = nil
		c.log.Info("generative backend ready", "relocation_eta", c.relocationETA)
	}
	c.view = ViewHome
	c.mu.Unlock()
	c.notifyChanged()
}

// OpenMessenger foregrounds the chat view for the current contact. While the
// backend is unavailable the messenger is unreachable and navigation is
// redirected home.
func (c *Controller) OpenMessenger(ctx context.Context) {
	c.mu.Lock()
	if c.status != StatusAPIReady {
		c.view = ViewHome
		c.overviewOpen = false
		c.mu.Unlock()
		c.notifyChanged()
		return
	}
	c.view = ViewChat
	c.overviewOpen = false
	c.switchContactLocked(ctx, c.activeContact)
	c.mu.Unlock()
	c.notifyChanged()
}

// SwitchContact changes which transcript the chat view displays. It does not
// change the current View.
func (c *Controller) SwitchContact(ctx context.Context, id chat.ContactID) {
	c.mu.Lock()
	c.switchContactLocked(ctx, id)
	c.mu.Unlock()
	c.notifyChanged()
}

func (c *Controller) switchContactLocked(ctx context.Context, id chat.ContactID) {
	contact, known := scenario.ContactByID(id)
	if !known {
		return
	}
	c.activeContact = id
	c.responsive = contact.Responsive

	if id == scenario.ContactLily && c.status == StatusAPIReady && !c.sessionReady {
		c.initSessionLocked(ctx)
	}
	c.overview.Upsert(ViewChat, messengerTitle, contactStatus(contact))
}

// initSessionLocked creates the Lily conversation session, guarded by a
// one-shot flag. On failure the flag is reset so the next chat entry
// retries.
func (c *Controller) initSessionLocked(ctx context.Context) {
	c.sessionReady = true
	c.transcripts[scenario.ContactLily] = nil
	c.chatErr = ""
	c.typing = false
	c.overview.Upsert(ViewChat, messengerTitle, "Chat with "+scenario.LilySpeakerName)

	session, err := c.backend.NewSession(ctx, scenario.SystemInstruction)
	if err != nil {
		c.log.Error("failed to start chat session", "error", err)
		errText := "Error starting " + scenario.LilySpeakerName + " session: " + err.Error()
		c.chatErr = errText
		c.transcripts[scenario.ContactLily] = append(c.transcripts[scenario.ContactLily],
			chat.NewErrorMessage(chat.SenderSystem, errText))
		c.sessionReady = false
		c.overview.Upsert(ViewChat, messengerTitle, "Error starting chat")
		return
	}
	c.session = session
}

// SendMessage appends the player's message to the active transcript and, for
// the AI-backed contact, starts a reply turn. Sends while a reply is in
// flight are rejected, not queued. Non-responsive contacts accept the
// message and never answer.
func (c *Controller) SendMessage(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	c.transcripts[c.activeContact] = append(c.transcripts[c.activeContact],
		chat.NewMessage(chat.SenderUser, text))
	c.chatErr = ""

	if c.activeContact != scenario.ContactLily {
		if contact, ok := scenario.ContactByID(c.activeContact); ok {
			c.overview.Upsert(ViewChat, messengerTitle, "Messaged "+contact.Name)
		}
		c.mu.Unlock()
		c.notifyChanged()
		return
	}

	if c.session == nil || c.backend == nil || c.replying {
		c.mu.Unlock()
		c.notifyChanged()
		return
	}

	c.replying = true
	c.turns.Add(1)
	go c.runTurn(ctx, text)
	c.mu.Unlock()
	c.notifyChanged()
}

// GoHome closes the task switcher and foregrounds the home screen.
func (c *Controller) GoHome() {
	c.mu.Lock()
	c.overviewOpen = false
	c.setViewLocked(ViewHome)
	c.mu.Unlock()
	c.notifyChanged()
}

// GoBack closes the task switcher if it is open; otherwise navigates home
// from any app view. Everywhere else it is a no-op.
func (c *Controller) GoBack() {
	c.mu.Lock()
	if c.overviewOpen {
		c.overviewOpen = false
		c.mu.Unlock()
		c.notifyChanged()
		return
	}
	if c.view.IsApp() {
		c.setViewLocked(ViewHome)
	}
	c.mu.Unlock()
	c.notifyChanged()
}

// ToggleOverview opens or closes the task-switcher overlay. The overlay does
// not change the current View.
func (c *Controller) ToggleOverview() {
	c.mu.Lock()
	c.overviewOpen = !c.overviewOpen
	c.mu.Unlock()
	c.notifyChanged()
}

// OpenGallery foregrounds the gallery, resolving to the unlocked or locked
// view from the persistent unlock flag.
func (c *Controller) OpenGallery() {
	c.mu.Lock()
	c.openGalleryLocked()
	c.mu.Unlock()
	c.notifyChanged()
}

func (c *Controller) openGalleryLocked() {
	view := ViewGalleryLocked
	if c.galleryUnlocked {
		view = ViewGalleryUnlocked
	}
	c.setViewLocked(view)
	c.overview.Upsert(view, galleryTitle, galleryStatus(c.galleryUnlocked))
	c.overviewOpen = false
}

// AttemptGalleryPIN evaluates a PIN attempt. Success unlocks the gallery,
// switches to the unlocked view, and moves the switcher entry to the
// unlocked slot. Failure changes nothing; clearing the input is the
// presentation layer's job.
func (c *Controller) AttemptGalleryPIN(pin string) bool {
	c.mu.Lock()
	if !c.galleryGate.Attempt(pin) {
		c.mu.Unlock()
		return false
	}
	c.galleryUnlocked = true
	c.setViewLocked(ViewGalleryUnlocked)
	c.overview.Upsert(ViewGalleryUnlocked, galleryTitle, galleryStatus(true))
	c.mu.Unlock()
	c.notifyChanged()
	return true
}

// OpenBrowser foregrounds the simulated browser. The restricted-network
// unlock only survives while the browser sits on the restricted address.
func (c *Controller) OpenBrowser() {
	c.mu.Lock()
	if !strings.EqualFold(c.browserURL, scenario.RestrictedAddress) {
		c.networkUnlocked = false
	}
	c.setViewLocked(ViewBrowser)
	c.overview.Upsert(ViewBrowser, browserTitle, browserStatus(c.browserURL, c.networkUnlocked))
	c.overviewOpen = false
	c.mu.Unlock()
	c.notifyChanged()
}

// NavigateBrowser points the browser at an address. Any address other than
// the restricted one re-locks the network, even transiently.
func (c *Controller) NavigateBrowser(url string) {
	url = strings.TrimSpace(url)
	c.mu.Lock()
	if !strings.EqualFold(url, scenario.RestrictedAddress) {
		c.networkUnlocked = false
	}
	c.browserURL = url
	c.overview.Upsert(ViewBrowser, browserTitle, browserStatus(c.browserURL, c.networkUnlocked))
	c.mu.Unlock()
	c.notifyChanged()
}

// AttemptNetworkPassword evaluates the restricted-network password. The
// address compares case-insensitively elsewhere; the password is exact.
func (c *Controller) AttemptNetworkPassword(password string) bool {
	c.mu.Lock()
	ok := c.networkGate.Attempt(password)
	c.networkUnlocked = ok
	c.overview.Upsert(ViewBrowser, browserTitle, browserStatus(scenario.RestrictedAddress, ok))
	c.mu.Unlock()
	c.notifyChanged()
	return ok
}

// AttemptChuteSequence evaluates the disposal-chute keypad code entered on
// the unlocked restricted page. A successful release is permanent; the
// network lock state is unaffected.
func (c *Controller) AttemptChuteSequence(sequence string) bool {
	c.mu.Lock()
	if !c.networkUnlocked || !c.chuteGate.Attempt(sequence) {
		c.mu.Unlock()
		return false
	}
	c.chuteReleased = true
	c.overview.Upsert(ViewBrowser, browserTitle, "Chute Released")
	c.mu.Unlock()
	c.notifyChanged()
	return true
}

// OpenCalculator foregrounds the calculator.
func (c *Controller) OpenCalculator() {
	c.mu.Lock()
	c.setViewLocked(ViewCalculator)
	c.overview.Upsert(ViewCalculator, calculatorTitle, c.calcDisplay)
	c.overviewOpen = false
	c.mu.Unlock()
	c.notifyChanged()
}

// SetCalculatorDisplay records the calculator's display value, which doubles
// as its task-switcher status line.
func (c *Controller) SetCalculatorDisplay(value string) {
	c.mu.Lock()
	c.calcDisplay = value
	if c.overview.Contains(ViewCalculator) {
		c.overview.Upsert(ViewCalculator, calculatorTitle, value)
	}
	c.mu.Unlock()
	c.notifyChanged()
}

// SwitchToApp re-opens an app from the task switcher, re-resolving gallery
// lock state and the current chat contact, and closes the overlay.
func (c *Controller) SwitchToApp(ctx context.Context, view View) {
	switch view {
	case ViewChat:
		c.OpenMessenger(ctx)
	case ViewGalleryLocked, ViewGalleryUnlocked:
		c.OpenGallery()
	case ViewBrowser:
		c.OpenBrowser()
	case ViewCalculator:
		c.OpenCalculator()
	default:
		c.mu.Lock()
		c.overviewOpen = false
		c.mu.Unlock()
		c.notifyChanged()
	}
}

// CloseApp removes an entry from the task switcher. Closing the unlocked
// gallery re-locks it; closing the foregrounded app navigates home.
func (c *Controller) CloseApp(view View) {
	c.mu.Lock()
	c.overview.Remove(view)
	if view == ViewGalleryUnlocked {
		c.galleryUnlocked = false
	}
	if c.view == view {
		c.overviewOpen = false
		c.setViewLocked(ViewHome)
	}
	c.mu.Unlock()
	c.notifyChanged()
}

// setViewLocked changes the current view, cancelling the boot timer when
// navigation leaves system_initiating before it fires.
func (c *Controller) setViewLocked(view View) {
	if c.view == ViewSystemInitiating && view != ViewSystemInitiating && c.bootTimer != nil {
		c.bootTimer.Stop()
		c.bootTimer = nil
	}
	c.view = view
}

// Wait blocks until all in-flight reply and image tasks have finished.
func (c *Controller) Wait() {
	c.turns.Wait()
}

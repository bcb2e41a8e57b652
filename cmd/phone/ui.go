package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/handset/pkg/chat"
	"github.com/jwebster45206/handset/pkg/phone"
	"github.com/jwebster45206/handset/pkg/scenario"
)

const PlaceHolderText = "Type your message here..."

// stateChangedMsg is sent by the controller whenever application state
// mutates outside the Update loop (timed reveals, image completions).
type stateChangedMsg struct{}

// browserField identifies which browser input has focus.
type browserField int

const (
	fieldAddress browserField = iota
	fieldPassword
	fieldKeypad
)

// PhoneUI is the BubbleTea model that renders the simulated handset.
// https://github.com/charmbracelet/bubbletea
type PhoneUI struct {
	ctrl *phone.Controller

	chatViewport viewport.Model
	pageViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	overviewIndex int

	pinInput string
	pinError string

	addressInput  string
	passwordInput string
	keypadInput   string
	passwordError string
	keypadError   string
	browserFocus  browserField

	calc calculator

	copyNotice string

	showQuitModal bool
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // teal
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("86")).
				Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)

func NewPhoneUI(ctrl *phone.Controller) PhoneUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(2)
	ta.ShowLineNumbers = false
	ta.Focus()

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true
	pageVp := viewport.New(50, 20)
	pageVp.MouseWheelEnabled = true

	return PhoneUI{
		ctrl:         ctrl,
		textarea:     ta,
		chatViewport: chatVp,
		pageViewport: pageVp,
		calc:         newCalculator(),
	}
}

func (m PhoneUI) Init() tea.Cmd {
	return textarea.Blink
}

// panelSize returns the inner width and height of the phone frame.
func (m PhoneUI) panelSize() (int, int) {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return w, h
}

func (m PhoneUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case stateChangedMsg:
		m.writeChatContent()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.panelSize()
		m.chatViewport.Width = w - 2
		m.chatViewport.Height = h - 9
		m.pageViewport.Width = w - 2
		m.pageViewport.Height = h - 6
		m.textarea.SetWidth(w - 4)
		m.ready = true
		m.writeChatContent()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.ctrl.Snapshot().View == phone.ViewChat {
			m.chatViewport, cmd = m.chatViewport.Update(msg)
		} else {
			m.pageViewport, cmd = m.pageViewport.Update(msg)
		}
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m PhoneUI) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.Snapshot()
	ctx := context.Background()

	if msg.Type == tea.KeyCtrlC {
		m.showQuitModal = true
		return m, nil
	}

	// The task switcher overlay captures navigation keys while open.
	if state.OverviewOpen {
		return m.updateOverview(msg, state)
	}

	switch state.View {
	case phone.ViewGameStart, phone.ViewIntro, phone.ViewInitialLoad:
		switch msg.Type {
		case tea.KeyEnter:
			if state.View == phone.ViewInitialLoad {
				m.ctrl.StartExperience(ctx)
			} else {
				m.ctrl.Advance()
			}
		}
		return m, nil

	case phone.ViewSystemInitiating:
		// Holds on the boot timer; keys are ignored.
		return m, nil
	}

	// Hardware-style navigation, available from home and every app.
	switch msg.Type {
	case tea.KeyEsc:
		m.ctrl.GoBack()
		return m, nil
	case tea.KeyCtrlG:
		m.ctrl.GoHome()
		return m, nil
	case tea.KeyCtrlR:
		m.overviewIndex = 0
		m.ctrl.ToggleOverview()
		return m, nil
	}

	switch state.View {
	case phone.ViewHome:
		switch msg.String() {
		case "1":
			m.ctrl.OpenMessenger(ctx)
			m.writeChatContent()
		case "2":
			m.ctrl.OpenGallery()
			m.writePageContent()
		case "3":
			m.ctrl.OpenBrowser()
			m.addressInput = m.ctrl.Snapshot().BrowserURL
			m.browserFocus = fieldAddress
		case "4":
			m.ctrl.OpenCalculator()
		}
		return m, nil

	case phone.ViewChat:
		return m.updateChat(msg, state)

	case phone.ViewGalleryLocked:
		return m.updateGalleryPIN(msg)

	case phone.ViewGalleryUnlocked:
		var cmd tea.Cmd
		m.pageViewport, cmd = m.pageViewport.Update(msg)
		return m, cmd

	case phone.ViewBrowser:
		return m.updateBrowser(msg, state)

	case phone.ViewCalculator:
		return m.updateCalculator(msg)
	}

	return m, nil
}

func (m PhoneUI) updateOverview(msg tea.KeyMsg, state phone.State) (tea.Model, tea.Cmd) {
	apps := state.Overview
	switch msg.Type {
	case tea.KeyEsc:
		m.ctrl.GoBack()
	case tea.KeyCtrlR:
		m.ctrl.ToggleOverview()
	case tea.KeyUp:
		if m.overviewIndex > 0 {
			m.overviewIndex--
		}
	case tea.KeyDown:
		if m.overviewIndex < len(apps)-1 {
			m.overviewIndex++
		}
	case tea.KeyEnter:
		if m.overviewIndex < len(apps) {
			m.ctrl.SwitchToApp(context.Background(), apps[m.overviewIndex].ID)
			m.writeChatContent()
			m.writePageContent()
		}
	default:
		if msg.String() == "x" && m.overviewIndex < len(apps) {
			m.ctrl.CloseApp(apps[m.overviewIndex].ID)
			if m.overviewIndex > 0 {
				m.overviewIndex--
			}
		}
	}
	return m, nil
}

func (m PhoneUI) updateChat(msg tea.KeyMsg, state phone.State) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.textarea.Value())
		if input == "" {
			return m, nil
		}
		m.textarea.Reset()
		m.copyNotice = ""
		m.ctrl.SendMessage(ctx, input)
		m.writeChatContent()
		return m, nil

	case tea.KeyTab:
		m.ctrl.SwitchContact(ctx, nextContact(state.ActiveContact))
		m.copyNotice = ""
		m.writeChatContent()
		return m, nil

	case tea.KeyCtrlY:
		if err := clipboard.WriteAll(transcriptText(state)); err != nil {
			m.copyNotice = "Copy failed: " + err.Error()
		} else {
			m.copyNotice = "Transcript copied to clipboard."
		}
		return m, nil
	}

	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}

func (m PhoneUI) updateGalleryPIN(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.ctrl.AttemptGalleryPIN(m.pinInput) {
			m.pinError = ""
			m.writePageContent()
		} else {
			m.pinError = "Incorrect PIN. Access denied."
		}
		m.pinInput = ""
	case tea.KeyBackspace:
		if len(m.pinInput) > 0 {
			m.pinInput = m.pinInput[:len(m.pinInput)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.pinInput) < 6 {
				m.pinInput += string(r)
				m.pinError = ""
			}
		}
	}
	return m, nil
}

func (m PhoneUI) updateBrowser(msg tea.KeyMsg, state phone.State) (tea.Model, tea.Cmd) {
	onRestricted := strings.EqualFold(state.BrowserURL, scenario.RestrictedAddress)

	switch msg.Type {
	case tea.KeyTab:
		m.browserFocus = m.nextBrowserField(state)
		return m, nil

	case tea.KeyEnter:
		switch m.browserFocus {
		case fieldAddress:
			m.ctrl.NavigateBrowser(m.addressInput)
			m.passwordError = ""
			next := m.ctrl.Snapshot()
			if strings.EqualFold(next.BrowserURL, scenario.RestrictedAddress) && !next.NetworkUnlocked {
				m.browserFocus = fieldPassword
			}
		case fieldPassword:
			if m.ctrl.AttemptNetworkPassword(m.passwordInput) {
				m.passwordError = ""
				m.browserFocus = fieldKeypad
			} else {
				m.passwordError = "Access Denied. Incorrect password."
			}
			m.passwordInput = ""
		case fieldKeypad:
			if m.ctrl.AttemptChuteSequence(m.keypadInput) {
				m.keypadError = ""
			} else {
				m.keypadError = "Override rejected. Sequence invalid."
			}
			m.keypadInput = ""
		}
		return m, nil

	case tea.KeyBackspace:
		switch m.browserFocus {
		case fieldAddress:
			if len(m.addressInput) > 0 {
				m.addressInput = m.addressInput[:len(m.addressInput)-1]
			}
		case fieldPassword:
			if len(m.passwordInput) > 0 {
				m.passwordInput = m.passwordInput[:len(m.passwordInput)-1]
			}
		case fieldKeypad:
			if len(m.keypadInput) > 0 {
				m.keypadInput = m.keypadInput[:len(m.keypadInput)-1]
			}
		}
		return m, nil

	case tea.KeyRunes:
		text := string(msg.Runes)
		switch m.browserFocus {
		case fieldAddress:
			m.addressInput += text
		case fieldPassword:
			if onRestricted {
				m.passwordInput += text
				m.passwordError = ""
			}
		case fieldKeypad:
			m.keypadInput += text
			m.keypadError = ""
		}
		return m, nil
	}

	return m, nil
}

// nextBrowserField cycles focus through the inputs the current page offers.
func (m PhoneUI) nextBrowserField(state phone.State) browserField {
	onRestricted := strings.EqualFold(state.BrowserURL, scenario.RestrictedAddress)
	switch m.browserFocus {
	case fieldAddress:
		if onRestricted && !state.NetworkUnlocked {
			return fieldPassword
		}
		if onRestricted && state.NetworkUnlocked && !state.ChuteReleased {
			return fieldKeypad
		}
		return fieldAddress
	default:
		return fieldAddress
	}
}

func (m PhoneUI) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.calc.equals()
	case tea.KeyBackspace:
		m.calc.backspace()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.calc.press(r)
		}
	default:
		return m, nil
	}
	m.ctrl.SetCalculatorDisplay(m.calc.display)
	return m, nil
}

func (m PhoneUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N", "esc":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}
	return m, nil
}

// nextContact returns the contact after id in display order.
func nextContact(id chat.ContactID) chat.ContactID {
	for i, c := range scenario.Contacts {
		if c.ID == id {
			return scenario.Contacts[(i+1)%len(scenario.Contacts)].ID
		}
	}
	return scenario.Contacts[0].ID
}

// transcriptText renders the active transcript as plain text for the
// clipboard.
func transcriptText(state phone.State) string {
	var b strings.Builder
	for _, msg := range state.Transcript {
		if msg.Loading {
			continue
		}
		b.WriteString(senderLabel(msg.Sender))
		b.WriteString(": ")
		if msg.ImageURL != "" {
			b.WriteString("[photo]")
		} else {
			b.WriteString(msg.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func senderLabel(s chat.Sender) string {
	switch s {
	case chat.SenderUser:
		return "You"
	case chat.SenderLily:
		return scenario.LilySpeakerName
	case chat.SenderRelocation:
		return scenario.RelocationName
	default:
		return "System"
	}
}

// writeChatContent rebuilds the chat viewport from the active transcript.
func (m *PhoneUI) writeChatContent() {
	state := m.ctrl.Snapshot()
	width := m.chatViewport.Width - 2
	if width < 10 {
		width = 10
	}

	var content strings.Builder
	for _, msg := range state.Transcript {
		switch {
		case msg.Loading && msg.Text != "":
			content.WriteString(loadingStyle.Render(msg.Text) + "\n\n")
		case msg.Loading:
			content.WriteString(loadingStyle.Render(scenario.LilySpeakerName+" is sending an image...") + "\n\n")
		case msg.Error:
			content.WriteString(errorStyle.Render(wordwrap.String(msg.Text, width)) + "\n\n")
		case msg.ImageURL != "":
			content.WriteString(speakerStyle.Render(senderLabel(msg.Sender)+": ") +
				systemStyle.Render(fmt.Sprintf("[photo, %d bytes]", len(msg.ImageURL))) + "\n\n")
		case msg.Sender == chat.SenderUser:
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(msg.Text, width) + "\n\n")
		default:
			content.WriteString(speakerStyle.Render(senderLabel(msg.Sender)+": ") +
				wordwrap.String(msg.Text, width) + "\n\n")
		}
	}
	if state.ChatError != "" {
		content.WriteString(errorStyle.Render(wordwrap.String(state.ChatError, width)) + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// writePageContent rebuilds the page viewport for the unlocked gallery.
func (m *PhoneUI) writePageContent() {
	width := m.pageViewport.Width - 2
	if width < 10 {
		width = 10
	}

	var content strings.Builder
	content.WriteString(promptStyle.Render("Select an item to view details. Scroll with arrow keys.") + "\n\n")
	for _, item := range scenario.GalleryItems {
		content.WriteString(titleStyle.Render(item.Title) + "\n")
		content.WriteString(wordwrap.String(item.Description, width) + "\n")
		for _, li := range item.ListItems {
			content.WriteString("  • " + wordwrap.String(li, width-4) + "\n")
		}
		content.WriteString("\n")
	}
	m.pageViewport.SetContent(content.String())
	m.pageViewport.GotoTop()
}

func (m PhoneUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	state := m.ctrl.Snapshot()
	w, h := m.panelSize()

	var body string
	switch {
	case state.OverviewOpen:
		body = m.renderOverview(state, w, h)
	default:
		switch state.View {
		case phone.ViewGameStart:
			body = m.renderGameStart(w, h)
		case phone.ViewIntro:
			body = m.renderIntro(w, h)
		case phone.ViewSystemInitiating:
			body = m.renderSystemInitiating(w, h)
		case phone.ViewInitialLoad:
			body = m.renderInitialLoad(w, h)
		case phone.ViewHome:
			body = m.renderHome(state, w, h)
		case phone.ViewChat:
			body = m.renderChat(state, w)
		case phone.ViewGalleryLocked:
			body = m.renderGalleryLocked(w, h)
		case phone.ViewGalleryUnlocked:
			body = m.renderGalleryUnlocked(w)
		case phone.ViewBrowser:
			body = m.renderBrowser(state, w, h)
		case phone.ViewCalculator:
			body = m.renderCalculator(state, w, h)
		}
	}

	panel := frameStyle.Width(w).Height(h).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel,
		lipgloss.WithWhitespaceChars(" "))
}

func (m PhoneUI) header(state phone.State, title string, w int) string {
	left := titleStyle.Render(title)
	right := ""
	if state.Status == phone.StatusAPIReady && state.RelocationETA != "" {
		right = promptStyle.Render("ETA " + state.RelocationETA)
	}
	gap := w - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(w - 2).Render(left + strings.Repeat(" ", gap) + right)
}

func centered(w, h int, lines ...string) string {
	content := strings.Join(lines, "\n")
	return lipgloss.Place(w-2, h-2, lipgloss.Center, lipgloss.Center, content)
}

func (m PhoneUI) renderGameStart(w, h int) string {
	return centered(w, h,
		titleStyle.Render("A  S I L E N T  S I G N A L"),
		"",
		"Somewhere, a confiscated handset powers on.",
		"",
		promptStyle.Render("Press Enter to begin"))
}

func (m PhoneUI) renderIntro(w, h int) string {
	intro := wordwrap.String(
		"You found the device taped under a bench at the transit station, "+
			"exactly where the note said it would be. The lock screen is "+
			"already disabled. Someone wanted you to have it.", w-8)
	return centered(w, h,
		titleStyle.Render("FOUND DEVICE"),
		"",
		intro,
		"",
		promptStyle.Render("Press Enter to power on"))
}

func (m PhoneUI) renderSystemInitiating(w, h int) string {
	return centered(w, h,
		titleStyle.Render("SYSTEM INITIATING"),
		"",
		loadingStyle.Render("Verifying device integrity..."),
		loadingStyle.Render("Restoring session data..."))
}

func (m PhoneUI) renderInitialLoad(w, h int) string {
	return centered(w, h,
		titleStyle.Render("DEVICE READY"),
		"",
		promptStyle.Render("Press Enter to connect"))
}

func (m PhoneUI) renderHome(state phone.State, w, h int) string {
	var b strings.Builder
	b.WriteString(m.header(state, "Home", w) + "\n\n")

	if state.Status == phone.StatusAPIError {
		b.WriteString(warnStyle.Width(w - 2).Render(wordwrap.String(scenario.APIKeyBannerMessage, w-4)) + "\n\n")
	}

	apps := []struct {
		key, name, note string
	}{
		{"1", "Messenger", ""},
		{"2", "Gallery", ""},
		{"3", "Web Browser", ""},
		{"4", "Calculator", ""},
	}
	if state.Status != phone.StatusAPIReady {
		apps[0].note = promptStyle.Render(" (unavailable)")
	}
	for _, app := range apps {
		b.WriteString("  " + selectedItemStyle.Render(" "+app.key+" ") + "  " + app.name + app.note + "\n\n")
	}

	b.WriteString("\n" + promptStyle.Render("Esc: back   Ctrl+R: recents   Ctrl+C: quit"))
	return b.String()
}

func (m PhoneUI) renderChat(state phone.State, w int) string {
	contact, _ := scenario.ContactByID(state.ActiveContact)

	var b strings.Builder
	b.WriteString(m.header(state, "Messenger - "+contact.Name, w) + "\n")
	if !state.Responsive {
		b.WriteString(promptStyle.Render("This contact does not respond.") + "\n")
	}
	b.WriteString(m.chatViewport.View() + "\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", w-2)) + "\n")
	b.WriteString(m.textarea.View() + "\n")

	hint := "Enter: send   Tab: next contact   Ctrl+Y: copy transcript"
	if m.copyNotice != "" {
		hint = m.copyNotice
	}
	b.WriteString(promptStyle.Render(hint))
	return b.String()
}

func (m PhoneUI) renderGalleryLocked(w, h int) string {
	masked := strings.Repeat("●", len(m.pinInput)) + strings.Repeat("·", 6-len(m.pinInput))
	lines := []string{
		titleStyle.Render("Gallery Locked"),
		"",
		"Enter 6-digit PIN",
		"",
		headerStyle.Render(" " + masked + " "),
		"",
	}
	if m.pinError != "" {
		lines = append(lines, errorStyle.Render(m.pinError), "")
	}
	lines = append(lines, promptStyle.Render("Digits to type, Enter to unlock, Esc to go back"))
	return centered(w, h, lines...)
}

func (m PhoneUI) renderGalleryUnlocked(w int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Width(w - 2).Render(titleStyle.Render("Gallery - Unlocked")) + "\n")
	b.WriteString(m.pageViewport.View())
	return b.String()
}

func (m PhoneUI) renderBrowser(state phone.State, w, h int) string {
	var b strings.Builder
	b.WriteString(m.header(state, "Web Browser", w) + "\n")

	addr := m.addressInput
	if m.browserFocus == fieldAddress {
		addr += "▏"
	}
	b.WriteString(" " + promptStyle.Render("https://") + addr + "\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", w-2)) + "\n\n")

	onRestricted := strings.EqualFold(state.BrowserURL, scenario.RestrictedAddress)
	switch {
	case state.BrowserURL == "":
		b.WriteString("Enter a web address to begin browsing.\n")
		b.WriteString(promptStyle.Render("Try typing skulls.system and press Enter.") + "\n")

	case onRestricted && !state.NetworkUnlocked:
		b.WriteString(titleStyle.Render("skulls.system") + "\n")
		b.WriteString("Authentication Required\n\n")
		pw := strings.Repeat("●", len(m.passwordInput))
		if m.browserFocus == fieldPassword {
			pw += "▏"
		}
		b.WriteString(" Password: " + headerStyle.Render(" "+pw+" ") + "\n")
		if m.passwordError != "" {
			b.WriteString(errorStyle.Render(m.passwordError) + "\n")
		}
		b.WriteString("\n" + promptStyle.Render("Tab: switch field   Enter: unlock") + "\n")

	case onRestricted:
		b.WriteString(m.renderSkullsPage(state, w))

	default:
		b.WriteString(errorStyle.Render("Access Restricted") + "\n\n")
		b.WriteString(wordwrap.String("This device has limited network access. Unable to connect to "+
			state.BrowserURL+". The website may be unavailable or outside the allowed network range.", w-4) + "\n")
	}

	return b.String()
}

func (m PhoneUI) renderSkullsPage(state phone.State, w int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SKULLS.SYSTEM") + "  " + promptStyle.Render("Secure Operations Network") + "\n\n")
	b.WriteString("SYSTEM STATUS: ONLINE. Welcome, Operative.\n\n")
	b.WriteString("CURRENT ACTIVE SUBJECT:\n")
	b.WriteString("  ID: #34\n")
	b.WriteString("  Asset Codename: " + scenario.NetworkPassword + "\n")
	b.WriteString("  Cell Block Assignment: C\n\n")
	b.WriteString(errorStyle.Render("RELOCATION NOTICE:") + "\n")
	b.WriteString("  Relocation Unit ETA for Subject #34: " + state.RelocationETA + "\n\n")

	if state.ChuteReleased {
		b.WriteString(titleStyle.Render("WASTE DISPOSAL CHUTE: OVERRIDE ACCEPTED") + "\n")
		b.WriteString(wordwrap.String("Manual release engaged in Cell Block C, Cell #34. "+
			"Maintenance access is open until the next scheduled sweep.", w-4) + "\n")
		return b.String()
	}

	b.WriteString("WASTE DISPOSAL CHUTE - MANUAL OVERRIDE:\n")
	kp := m.keypadInput
	if m.browserFocus == fieldKeypad {
		kp += "▏"
	}
	b.WriteString(" Keypad: " + headerStyle.Render(" "+kp+" ") + "\n")
	if m.keypadError != "" {
		b.WriteString(errorStyle.Render(m.keypadError) + "\n")
	}
	b.WriteString(promptStyle.Render("Enter the override sequence with dashes, e.g. 1-2-3") + "\n")
	return b.String()
}

func (m PhoneUI) renderCalculator(state phone.State, w, h int) string {
	display := headerStyle.Width(w - 6).Align(lipgloss.Right).Render(state.CalculatorDisplay)
	return centered(w, h,
		titleStyle.Render("Calculator"),
		"",
		display,
		"",
		promptStyle.Render("Digits and + - * / to type"),
		promptStyle.Render("Enter: equals   Backspace: delete   c: clear"))
}

func (m PhoneUI) renderOverview(state phone.State, w, h int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent Apps") + "\n\n")

	if len(state.Overview) == 0 {
		b.WriteString(promptStyle.Render("No recent apps.") + "\n")
	}
	for i, app := range state.Overview {
		line := fmt.Sprintf("%s - %s", app.Title, app.Status)
		if i == m.overviewIndex {
			b.WriteString(selectedItemStyle.Render(" ▶ "+line+" ") + "\n")
		} else {
			b.WriteString(itemStyle.Render("   "+line) + "\n")
		}
	}

	b.WriteString("\n" + promptStyle.Render("↑/↓: select   Enter: open   x: close app   Esc: dismiss"))
	return centered(w, h, b.String())
}

func (m PhoneUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Power Off?"))
	content.WriteString("\n\n")
	content.WriteString("The device will shut down and the session will end.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

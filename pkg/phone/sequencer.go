package phone

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/handset/pkg/chat"
	"github.com/jwebster45206/handset/pkg/scenario"
	"github.com/jwebster45206/handset/pkg/textfilter"
)

// runTurn is one conversation turn: send the player's text to the backend,
// then reveal the reply segment by segment. It runs as a single goroutine
// per reply; the replying guard in SendMessage keeps it single-flight. Once
// started it runs to completion even if the player navigates away, updating
// the transcript and the task switcher in the background.
func (c *Controller) runTurn(ctx context.Context, text string) {
	defer c.turns.Done()

	reply, err := c.session.Send(ctx, text)
	if err != nil {
		c.log.Error("chat turn failed", "error", err)
		c.mu.Lock()
		c.removeLoadingLocked(scenario.ContactLily)
		c.typing = false
		c.replying = false
		errText := scenario.LilySpeakerName + " seems to be having trouble responding. (Error: " + err.Error() + ")"
		c.chatErr = errText
		c.transcripts[scenario.ContactLily] = append(c.transcripts[scenario.ContactLily],
			chat.NewErrorMessage(chat.SenderSystem, errText))
		c.overview.Upsert(ViewChat, messengerTitle, "Error in chat")
		c.mu.Unlock()
		c.notifyChanged()
		return
	}

	c.deliverReply(ctx, reply)

	c.mu.Lock()
	c.typing = false // defensive cleanup
	c.replying = false
	c.overview.Upsert(ViewChat, messengerTitle, messengerCountStatus(c.countLilyTextsLocked()))
	c.mu.Unlock()
	c.notifyChanged()
}

// deliverReply drives the timed reveal of one reply: a typing indicator and
// a length-proportional hold per text segment, an asynchronous resolution
// per image segment, and a short randomized thinking beat between
// consecutive text segments.
func (c *Controller) deliverReply(ctx context.Context, raw string) {
	segments := chat.ParseReply(raw)

	for i, segment := range segments {
		switch segment.Type {
		case chat.SegmentText:
			content := textfilter.Scrub(segment.Content)
			if content == "" {
				continue
			}
			c.revealText(content)

		case chat.SegmentImage:
			c.requestImage(ctx, segment.Content)
		}

		if i < len(segments)-1 && segment.Type == chat.SegmentText && segments[i+1].Type == chat.SegmentText {
			c.sleep(c.thinkPause())
		}
	}
}

// revealText shows the typing indicator, holds for the computed delay, then
// commits the text as a final message.
func (c *Controller) revealText(content string) {
	c.mu.Lock()
	c.removeLoadingLocked(scenario.ContactLily)
	indicator := chat.Message{
		ID:      uuid.NewString(),
		Sender:  chat.SenderLily,
		Text:    scenario.TypingMessage,
		Loading: true,
	}
	c.transcripts[scenario.ContactLily] = append(c.transcripts[scenario.ContactLily], indicator)
	c.typing = true
	c.overview.Upsert(ViewChat, messengerTitle, scenario.TypingMessage)
	c.mu.Unlock()
	c.notifyChanged()

	c.sleep(chat.TypingDelay(len([]rune(content))))

	c.mu.Lock()
	c.removeByIDLocked(scenario.ContactLily, indicator.ID)
	c.typing = false
	c.transcripts[scenario.ContactLily] = append(c.transcripts[scenario.ContactLily],
		chat.NewMessage(chat.SenderLily, content))
	c.overview.Upsert(ViewChat, messengerTitle, messengerCountStatus(c.countLilyTextsLocked()))
	c.mu.Unlock()
	c.notifyChanged()
}

// requestImage appends a pending-image placeholder and resolves it in the
// background. Without an image backend the segment degrades to an immediate
// error message.
func (c *Controller) requestImage(ctx context.Context, description string) {
	if c.images == nil {
		c.mu.Lock()
		c.transcripts[scenario.ContactLily] = append(c.transcripts[scenario.ContactLily],
			chat.NewErrorMessage(chat.SenderLily, scenario.ImageGenErrorMessage))
		c.mu.Unlock()
		c.notifyChanged()
		return
	}

	placeholder := chat.Message{
		ID:      uuid.NewString(),
		Sender:  chat.SenderLily,
		Loading: true,
	}
	c.mu.Lock()
	c.transcripts[scenario.ContactLily] = append(c.transcripts[scenario.ContactLily], placeholder)
	c.overview.Upsert(ViewChat, messengerTitle, sendingImageStatus())
	c.mu.Unlock()
	c.notifyChanged()

	c.turns.Add(1)
	go c.resolveImage(ctx, placeholder.ID, description)
}

// resolveImage completes one pending image by identity. The placeholder may
// race with other transcript mutations, so it is located by ID; if it was
// removed in the meantime the completion is dropped.
func (c *Controller) resolveImage(ctx context.Context, id, description string) {
	defer c.turns.Done()

	url, err := c.images.Generate(ctx, description)
	if err != nil {
		c.log.Error("image generation failed", "error", err)
	}

	c.mu.Lock()
	found := false
	transcript := c.transcripts[scenario.ContactLily]
	for i := range transcript {
		if transcript[i].ID != id {
			continue
		}
		found = true
		if err != nil {
			transcript[i].Text = scenario.ImageGenErrorMessage
			transcript[i].Error = true
		} else {
			transcript[i].ImageURL = url
		}
		transcript[i].Loading = false
		break
	}
	c.mu.Unlock()

	if found {
		c.notifyChanged()
	}
}

// removeLoadingLocked drops any loading placeholders a contact has pending.
func (c *Controller) removeLoadingLocked(id chat.ContactID) {
	transcript := c.transcripts[id]
	kept := transcript[:0]
	for _, m := range transcript {
		if !m.Loading {
			kept = append(kept, m)
		}
	}
	c.transcripts[id] = kept
}

// removeByIDLocked drops a single message by identity.
func (c *Controller) removeByIDLocked(id chat.ContactID, messageID string) {
	transcript := c.transcripts[id]
	kept := transcript[:0]
	for _, m := range transcript {
		if m.ID != messageID {
			kept = append(kept, m)
		}
	}
	c.transcripts[id] = kept
}

// countLilyTextsLocked counts finalized text messages from Lily, the number
// shown in the messenger's task-switcher status.
func (c *Controller) countLilyTextsLocked() int {
	n := 0
	for _, m := range c.transcripts[scenario.ContactLily] {
		if m.Sender == chat.SenderLily && m.Text != "" && !m.Loading && !m.Error {
			n++
		}
	}
	return n
}

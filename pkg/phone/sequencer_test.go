package phone

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/handset/internal/services"
	"github.com/jwebster45206/handset/pkg/chat"
	"github.com/jwebster45206/handset/pkg/scenario"
)

// newChatController builds a controller booted into the chat view with a
// scripted reply on the Lily session.
func newChatController(t *testing.T, reply string, images services.ImageBackend) (*Controller, *services.MockChatSession) {
	t.Helper()
	session := services.NewMockChatSession()
	session.SetReply(reply)
	backend := services.NewMockChatBackend()
	backend.NewSessionFunc = func(ctx context.Context, instruction string) (services.ChatSession, error) {
		return session, nil
	}

	c := newTestController(t, backend, images)
	ctx := context.Background()
	bootToHome(t, ctx, c)
	c.OpenMessenger(ctx)
	require.Equal(t, ViewChat, c.Snapshot().View)
	return c, session
}

func TestTurnRevealsTextThenImage(t *testing.T) {
	images := services.NewMockImageBackend()
	c, session := newChatController(t, "Hi||PART_BREAK||[IMAGE_PROMPT: a dim room]", images)

	c.SendMessage(context.Background(), "hello")
	c.Wait()

	assert.Equal(t, []string{"hello"}, session.GetSendCalls())
	assert.Equal(t, []string{"a dim room"}, images.GetGenerateCalls())

	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 3)

	assert.Equal(t, chat.SenderUser, transcript[0].Sender)
	assert.Equal(t, "hello", transcript[0].Text)

	assert.Equal(t, chat.SenderLily, transcript[1].Sender)
	assert.Equal(t, "Hi", transcript[1].Text)

	assert.Equal(t, chat.SenderLily, transcript[2].Sender)
	assert.NotEmpty(t, transcript[2].ImageURL)
	assert.False(t, transcript[2].Loading)
	assert.False(t, transcript[2].Error)

	state := c.Snapshot()
	assert.False(t, state.Typing)
	assert.False(t, state.Replying)
	assert.Empty(t, state.ChatError)
}

func TestTurnMultiPartText(t *testing.T) {
	c, _ := newChatController(t, "I'm here.||PART_BREAK||Please don't go.", nil)

	c.SendMessage(context.Background(), "are you there?")
	c.Wait()

	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 3)
	assert.Equal(t, "I'm here.", transcript[1].Text)
	assert.Equal(t, "Please don't go.", transcript[2].Text)

	var status string
	for _, app := range c.Snapshot().Overview {
		if app.ID == ViewChat {
			status = app.Status
		}
	}
	assert.Equal(t, messengerCountStatus(2), status)
}

func TestTurnLeavesNoPlaceholders(t *testing.T) {
	var mu sync.Mutex
	sawTyping := false
	sawLoading := false

	images := services.NewMockImageBackend()
	c, _ := newChatController(t, "Wait...||PART_BREAK||[IMAGE_PROMPT: the hatch]", images)
	c.OnChange(func() {
		state := c.Snapshot()
		mu.Lock()
		defer mu.Unlock()
		if state.Typing {
			sawTyping = true
		}
		for _, m := range state.Transcript {
			if m.Loading {
				sawLoading = true
			}
		}
	})

	c.SendMessage(context.Background(), "what do you see?")
	c.Wait()

	mu.Lock()
	assert.True(t, sawTyping, "the typing indicator should appear during the reveal")
	assert.True(t, sawLoading, "a pending placeholder should appear during the reveal")
	mu.Unlock()

	for _, m := range c.Transcript(scenario.ContactLily) {
		assert.False(t, m.Loading, "no placeholder may outlive the turn")
	}
}

func TestSendWhileReplyingIsRejected(t *testing.T) {
	c, session := newChatController(t, "", nil)

	release := make(chan struct{})
	session.SendFunc = func(ctx context.Context, text string) (string, error) {
		<-release
		return "Okay.", nil
	}

	ctx := context.Background()
	c.SendMessage(ctx, "one")

	deadline := time.Now().Add(2 * time.Second)
	for !c.Snapshot().Replying && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	require.True(t, c.Snapshot().Replying)

	// The second send lands in the transcript but starts no turn.
	c.SendMessage(ctx, "two")

	close(release)
	c.Wait()

	assert.Equal(t, []string{"one"}, session.GetSendCalls())

	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 3)
	assert.Equal(t, "one", transcript[0].Text)
	assert.Equal(t, "two", transcript[1].Text)
	assert.Equal(t, "Okay.", transcript[2].Text)
}

func TestTurnSendError(t *testing.T) {
	c, session := newChatController(t, "", nil)
	session.SetSendError(assert.AnError)

	c.SendMessage(context.Background(), "hello?")
	c.Wait()

	state := c.Snapshot()
	assert.False(t, state.Replying)
	assert.False(t, state.Typing)
	assert.Contains(t, state.ChatError, "having trouble responding")

	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 2)
	last := transcript[1]
	assert.Equal(t, chat.SenderSystem, last.Sender)
	assert.True(t, last.Error)

	// The next send is accepted again.
	session.SetReply("Still here.")
	c.SendMessage(context.Background(), "lily?")
	c.Wait()
	assert.Empty(t, c.Snapshot().ChatError)
}

func TestImageGenerationError(t *testing.T) {
	images := services.NewMockImageBackend()
	images.SetGenerateError(assert.AnError)
	c, _ := newChatController(t, "[IMAGE_PROMPT: the vent]", images)

	c.SendMessage(context.Background(), "show me")
	c.Wait()

	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 2)
	failed := transcript[1]
	assert.True(t, failed.Error)
	assert.False(t, failed.Loading)
	assert.Empty(t, failed.ImageURL)
	assert.Equal(t, scenario.ImageGenErrorMessage, failed.Text)
}

func TestImageWithoutBackendDegrades(t *testing.T) {
	c, _ := newChatController(t, "Look.||PART_BREAK||[IMAGE_PROMPT: the door]", nil)

	c.SendMessage(context.Background(), "show me the door")
	c.Wait()

	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 3)
	assert.Equal(t, "Look.", transcript[1].Text)
	assert.True(t, transcript[2].Error)
	assert.Equal(t, scenario.ImageGenErrorMessage, transcript[2].Text)
}

func TestStageDirectionsAreScrubbed(t *testing.T) {
	c, _ := newChatController(t, "*sobs quietly* Please... don't leave.", nil)

	c.SendMessage(context.Background(), "I'm here")
	c.Wait()

	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 2)
	assert.Equal(t, "Please... don't leave.", transcript[1].Text)
}

func TestEmptySegmentsProduceNoMessages(t *testing.T) {
	c, _ := newChatController(t, "*static*||PART_BREAK||", nil)

	c.SendMessage(context.Background(), "hello?")
	c.Wait()

	// The whole reply scrubbed to nothing; only the player's message remains.
	transcript := c.Transcript(scenario.ContactLily)
	require.Len(t, transcript, 1)
	assert.Equal(t, chat.SenderUser, transcript[0].Sender)
}

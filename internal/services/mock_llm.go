package services

import (
	"context"
	"sync"
)

// MockChatBackend is a mock implementation of ChatBackend for testing.
type MockChatBackend struct {
	NewSessionFunc func(ctx context.Context, instruction string) (ChatSession, error)

	// Track calls for testing
	NewSessionCalls []string

	mu sync.Mutex
}

// NewMockChatBackend creates a mock backend whose sessions echo a canned
// reply unless overridden.
func NewMockChatBackend() *MockChatBackend {
	return &MockChatBackend{
		NewSessionCalls: make([]string, 0),
	}
}

func (m *MockChatBackend) NewSession(ctx context.Context, instruction string) (ChatSession, error) {
	m.mu.Lock()
	m.NewSessionCalls = append(m.NewSessionCalls, instruction)
	fn := m.NewSessionFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, instruction)
	}
	return NewMockChatSession(), nil
}

// SetNewSessionError sets up the mock to fail session creation.
func (m *MockChatBackend) SetNewSessionError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NewSessionFunc = func(ctx context.Context, instruction string) (ChatSession, error) {
		return nil, err
	}
}

// MockChatSession is a mock implementation of ChatSession for testing.
type MockChatSession struct {
	SendFunc func(ctx context.Context, text string) (string, error)

	// Track calls for testing
	SendCalls []string

	mu sync.Mutex
}

func NewMockChatSession() *MockChatSession {
	return &MockChatSession{
		SendCalls: make([]string, 0),
	}
}

func (m *MockChatSession) Send(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.SendCalls = append(m.SendCalls, text)
	fn := m.SendFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text)
	}
	return "Mock reply", nil
}

// SetReply sets up the mock to return a fixed reply.
func (m *MockChatSession) SetReply(reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendFunc = func(ctx context.Context, text string) (string, error) {
		return reply, nil
	}
}

// SetSendError sets up the mock to fail on Send.
func (m *MockChatSession) SetSendError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendFunc = func(ctx context.Context, text string) (string, error) {
		return "", err
	}
}

// GetSendCalls returns a copy of the recorded Send inputs.
func (m *MockChatSession) GetSendCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.SendCalls))
	copy(calls, m.SendCalls)
	return calls
}

// MockImageBackend is a mock implementation of ImageBackend for testing.
type MockImageBackend struct {
	GenerateFunc func(ctx context.Context, description string) (string, error)

	// Track calls for testing
	GenerateCalls []string

	mu sync.Mutex
}

func NewMockImageBackend() *MockImageBackend {
	return &MockImageBackend{
		GenerateCalls: make([]string, 0),
	}
}

func (m *MockImageBackend) Generate(ctx context.Context, description string) (string, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, description)
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, description)
	}
	return "data:image/jpeg;base64,bW9jaw==", nil
}

// SetGenerateError sets up the mock to fail image generation.
func (m *MockImageBackend) SetGenerateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateFunc = func(ctx context.Context, description string) (string, error) {
		return "", err
	}
}

// GetGenerateCalls returns a copy of the recorded descriptions.
func (m *MockImageBackend) GetGenerateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.GenerateCalls))
	copy(calls, m.GenerateCalls)
	return calls
}

// Interface checks.
var (
	_ ChatBackend  = (*MockChatBackend)(nil)
	_ ChatSession  = (*MockChatSession)(nil)
	_ ImageBackend = (*MockImageBackend)(nil)
)

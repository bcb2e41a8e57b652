package services

import (
	"context"
	"fmt"
	"testing"
)

func TestMockChatBackend(t *testing.T) {
	backend := NewMockChatBackend()

	session, err := backend.NewSession(context.Background(), "test instruction")
	if err != nil {
		t.Errorf("NewSession failed: %v", err)
	}
	if session == nil {
		t.Fatal("Expected a session, got nil")
	}

	if len(backend.NewSessionCalls) != 1 {
		t.Errorf("Expected 1 NewSession call, got %d", len(backend.NewSessionCalls))
	}
	if backend.NewSessionCalls[0] != "test instruction" {
		t.Errorf("Expected instruction 'test instruction', got '%s'", backend.NewSessionCalls[0])
	}

	reply, err := session.Send(context.Background(), "Hello")
	if err != nil {
		t.Errorf("Send failed: %v", err)
	}
	if reply != "Mock reply" {
		t.Errorf("Expected 'Mock reply', got '%s'", reply)
	}
}

func TestMockChatBackend_ErrorHandling(t *testing.T) {
	backend := NewMockChatBackend()

	expectedErr := fmt.Errorf("session creation failed")
	backend.SetNewSessionError(expectedErr)

	_, err := backend.NewSession(context.Background(), "test instruction")
	if err == nil {
		t.Error("Expected error, got nil")
	}
	if err.Error() != expectedErr.Error() {
		t.Errorf("Expected error '%s', got '%s'", expectedErr.Error(), err.Error())
	}
}

func TestMockChatSession(t *testing.T) {
	session := NewMockChatSession()
	session.SetReply("canned reply")

	reply, err := session.Send(context.Background(), "first")
	if err != nil {
		t.Errorf("Send failed: %v", err)
	}
	if reply != "canned reply" {
		t.Errorf("Expected 'canned reply', got '%s'", reply)
	}

	_, _ = session.Send(context.Background(), "second")

	calls := session.GetSendCalls()
	if len(calls) != 2 {
		t.Errorf("Expected 2 Send calls, got %d", len(calls))
	}
	if calls[0] != "first" || calls[1] != "second" {
		t.Errorf("Unexpected call order: %v", calls)
	}
}

func TestMockImageBackend(t *testing.T) {
	images := NewMockImageBackend()

	url, err := images.Generate(context.Background(), "a dim room")
	if err != nil {
		t.Errorf("Generate failed: %v", err)
	}
	if url == "" {
		t.Error("Expected a data URL, got empty string")
	}

	images.SetGenerateError(fmt.Errorf("quota exceeded"))
	if _, err := images.Generate(context.Background(), "another"); err == nil {
		t.Error("Expected error, got nil")
	}

	calls := images.GetGenerateCalls()
	if len(calls) != 2 {
		t.Errorf("Expected 2 Generate calls, got %d", len(calls))
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultOpenAIModel      = "gpt-4o-mini"
	DefaultOpenAIImageModel = openai.CreateImageModelDallE3
)

// OpenAIService implements ChatBackend and ImageBackend using the go-openai
// SDK.
type OpenAIService struct {
	client     *openai.Client
	modelName  string
	imageModel string
	logger     *slog.Logger
}

// NewOpenAIService creates an OpenAI-backed service. Empty model names fall
// back to the defaults.
func NewOpenAIService(apiKey, modelName, imageModel string, logger *slog.Logger) *OpenAIService {
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}
	if imageModel == "" {
		imageModel = DefaultOpenAIImageModel
	}
	return &OpenAIService{
		client:     openai.NewClient(apiKey),
		modelName:  modelName,
		imageModel: imageModel,
		logger:     logger,
	}
}

func (o *OpenAIService) NewSession(ctx context.Context, instruction string) (ChatSession, error) {
	if o.client == nil {
		return nil, fmt.Errorf("openai client is not configured")
	}
	s := &openaiSession{svc: o}
	if instruction != "" {
		s.messages = append(s.messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: instruction,
		})
	}
	return s, nil
}

// Generate requests a single base64 image and returns it as a data URL,
// matching the resource format the Gemini backend produces.
func (o *OpenAIService) Generate(ctx context.Context, description string) (string, error) {
	resp, err := o.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         description,
		Model:          o.imageModel,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("no image generated")
	}
	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}

type openaiSession struct {
	svc *OpenAIService

	mu       sync.Mutex
	messages []openai.ChatCompletionMessage
}

func (s *openaiSession) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	resp, err := s.svc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.svc.modelName,
		Messages: s.messages,
	})
	if err != nil {
		// Drop the unanswered turn so a retry does not duplicate it.
		s.messages = s.messages[:len(s.messages)-1]
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		s.messages = s.messages[:len(s.messages)-1]
		return "", fmt.Errorf("no choices in response")
	}

	reply := resp.Choices[0].Message.Content
	s.messages = append(s.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	return reply, nil
}

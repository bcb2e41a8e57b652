package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	DefaultGeminiModel      = "gemini-2.5-flash"
	DefaultGeminiImageModel = "imagen-3.0-generate-002"
)

// GeminiService implements ChatBackend and ImageBackend against the Google
// generative language API.
type GeminiService struct {
	apiKey     string
	modelName  string
	imageModel string
	httpClient *http.Client
	logger     *slog.Logger
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerateRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

type geminiPredictRequest struct {
	Instances  []geminiPredictInstance `json:"instances"`
	Parameters geminiPredictParameters `json:"parameters"`
}

type geminiPredictInstance struct {
	Prompt string `json:"prompt"`
}

type geminiPredictParameters struct {
	SampleCount    int    `json:"sampleCount"`
	OutputMimeType string `json:"outputMimeType,omitempty"`
}

type geminiPredictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType,omitempty"`
	} `json:"predictions"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewGeminiService creates a Gemini-backed service. Empty model names fall
// back to the defaults.
func NewGeminiService(apiKey, modelName, imageModel string, logger *slog.Logger) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if imageModel == "" {
		imageModel = DefaultGeminiImageModel
	}
	return &GeminiService{
		apiKey:     apiKey,
		modelName:  modelName,
		imageModel: imageModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// NewSession starts a conversation seeded with the system instruction.
// The session holds the turn history locally; the generateContent endpoint
// is stateless.
func (g *GeminiService) NewSession(ctx context.Context, instruction string) (ChatSession, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	return &geminiSession{
		svc:         g,
		instruction: instruction,
	}, nil
}

// Generate requests a single image for the description and returns it as a
// JPEG data URL.
func (g *GeminiService) Generate(ctx context.Context, description string) (string, error) {
	reqBody, err := json.Marshal(geminiPredictRequest{
		Instances: []geminiPredictInstance{{Prompt: description}},
		Parameters: geminiPredictParameters{
			SampleCount:    1,
			OutputMimeType: "image/jpeg",
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:predict?key=%s", geminiBaseURL, g.imageModel, g.apiKey)
	body, err := g.post(ctx, url, reqBody)
	if err != nil {
		return "", err
	}

	var predictResp geminiPredictResponse
	if err := json.Unmarshal(body, &predictResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if predictResp.Error != nil {
		return "", fmt.Errorf("API error: %s", predictResp.Error.Message)
	}
	if len(predictResp.Predictions) == 0 || predictResp.Predictions[0].BytesBase64Encoded == "" {
		return "", fmt.Errorf("no image generated")
	}

	return "data:image/jpeg;base64," + predictResp.Predictions[0].BytesBase64Encoded, nil
}

func (g *GeminiService) post(ctx context.Context, url string, reqBody []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// geminiSession holds one conversation's history. Send serializes access so
// a racing caller cannot interleave turns.
type geminiSession struct {
	svc         *GeminiService
	instruction string

	mu      sync.Mutex
	history []geminiContent
}

func (s *geminiSession) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents := make([]geminiContent, 0, len(s.history)+1)
	contents = append(contents, s.history...)
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: text}},
	})

	genReq := geminiGenerateRequest{Contents: contents}
	if s.instruction != "" {
		genReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: s.instruction}},
		}
	}

	reqBody, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", geminiBaseURL, s.svc.modelName, s.svc.apiKey)
	body, err := s.svc.post(ctx, url, reqBody)
	if err != nil {
		return "", err
	}

	var genResp geminiGenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if genResp.Error != nil {
		return "", fmt.Errorf("API error: %s", genResp.Error.Message)
	}
	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var parts []string
	for _, p := range genResp.Candidates[0].Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	reply := strings.Join(parts, "")

	s.history = contents
	s.history = append(s.history, geminiContent{
		Role:  "model",
		Parts: []geminiPart{{Text: reply}},
	})

	return reply, nil
}

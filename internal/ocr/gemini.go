package ocr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"akaul/billsnap/internal/extracterror"
	"akaul/billsnap/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// recognizePrompt asks the vision model for a plain transcription. The
// extraction engine wants raw text, not interpretation.
const recognizePrompt = `Transcribe all text visible in this bill or receipt image.
Return only the raw text, preserving the line structure. Do not summarize,
translate, or add any commentary.`

// GeminiEngine implements Engine using the Google Gemini vision API.
type GeminiEngine struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiEngine creates a Gemini-backed OCR engine client.
func NewGeminiEngine(apiKey, modelName string, timeout time.Duration, logger logging.Logger) (*GeminiEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiEngine{
		client:  client,
		model:   client.GenerativeModel(modelName),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Recognize submits the image to the vision model and returns the
// transcribed text.
func (g *GeminiEngine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.Debug("Submitting image for recognition",
		logging.Field{Key: logging.FieldLanguage, Value: language})

	prompt := recognizePrompt
	if language != "" && language != "eng" {
		prompt += fmt.Sprintf("\nThe document language code is %q.", language)
	}

	parts := []genai.Part{
		genai.ImageData("png", image),
		genai.Text(prompt),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", &extracterror.RecognitionError{Engine: "gemini", Err: err}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &extracterror.RecognitionError{
			Engine: "gemini",
			Err:    fmt.Errorf("empty response from model"),
		}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	recognized := strings.TrimSpace(text.String())
	if recognized == "" {
		return "", &extracterror.RecognitionError{
			Engine: "gemini",
			Err:    fmt.Errorf("no text recognized"),
		}
	}

	return recognized, nil
}

// Close closes the underlying API client.
func (g *GeminiEngine) Close() error {
	return g.client.Close()
}

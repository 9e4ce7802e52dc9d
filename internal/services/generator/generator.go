// Package generator sends a photo and a prompt to the Gemini image model and
// returns the first image it streams back.
package generator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/phambaophuc/ai-photobooth/internal/config"
)

var (
	ErrNoImage      = errors.New("no valid image response")
	ErrMissingInput = errors.New("missing image or prompt")
)

const promptTemplate = "Enhance this real photograph by realistically adding %s to the people in the image. " +
	"Do not turn anyone into a cartoon or drawing. Keep all faces photorealistic, clearly visible, and unaltered. " +
	"Do not change the background or lighting. Only add accessories or visual effects around the heads, shoulders, " +
	"or bodies of each person, and ensure the composition remains in a 16:9 ratio. " +
	"The image should retain its natural realism and original environment."

// BuildPrompt wraps the chosen costume tags in the booth's editing instructions.
func BuildPrompt(tags string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(tags))
}

type streamFunc func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]

type Generator struct {
	stream  streamFunc
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewGenerator(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Generator{
		stream:  client.Models.GenerateContentStream,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Generate streams the model's answer and returns the first inline image.
// Chunks after that image are not read.
func (g *Generator) Generate(ctx context.Context, image []byte, mimeType, prompt string) ([]byte, error) {
	if len(image) == 0 || strings.TrimSpace(prompt) == "" {
		return nil, ErrMissingInput
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	start := time.Now()
	chunks := 0
	for resp, err := range g.stream(ctx, g.model, contents, cfg) {
		if err != nil {
			return nil, fmt.Errorf("generation stream failed: %w", err)
		}
		chunks++

		if data, mime := firstInlineImage(resp); data != nil {
			g.logger.Info("Image generated",
				zap.String("model", g.model),
				zap.String("mime_type", mime),
				zap.Int("chunks", chunks),
				zap.Int("bytes", len(data)),
				zap.Duration("latency", time.Since(start)),
			)
			return data, nil
		}
	}

	g.logger.Warn("Generation finished without an image",
		zap.String("model", g.model),
		zap.Int("chunks", chunks))
	return nil, ErrNoImage
}

func firstInlineImage(resp *genai.GenerateContentResponse) ([]byte, string) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ""
	}

	// only the first candidate is considered
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return nil, ""
	}

	for _, part := range cand.Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, part.InlineData.MIMEType
		}
	}
	return nil, ""
}

package suggest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const maxSuggestions = 5

// TitleSuggester proposes clearer titles for a drafted question. The
// feature is best-effort: callers always get a usable (possibly empty)
// slice and never an error they must surface to the user.
type TitleSuggester interface {
	Suggest(ctx context.Context, draft string) []string
}

// GeminiSuggester generates title suggestions with the Gemini API
type GeminiSuggester struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiSuggester creates a suggester over the Gemini API
func NewGeminiSuggester(apiKey, model string, timeout time.Duration, logger *zap.Logger) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiSuggester{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Suggest proposes up to five alternative titles for the draft. Failures
// and timeouts degrade to an empty slice.
func (s *GeminiSuggester) Suggest(ctx context.Context, draft string) []string {
	draft = strings.TrimSpace(draft)
	if draft == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Đề xuất tối đa %d tiêu đề ngắn gọn, rõ ràng cho câu hỏi sau của phụ huynh. "+
			"Chỉ trả về danh sách tiêu đề, mỗi dòng một tiêu đề, không đánh số.\n\nCâu hỏi: %s",
		maxSuggestions, draft)

	result, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		s.logger.Warn("Title suggestion failed", zap.Error(err))
		return nil
	}

	return parseSuggestions(result.Text())
}

// parseSuggestions splits the model output into clean title lines,
// stripping list markers the model adds despite instructions
func parseSuggestions(text string) []string {
	var titles []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.Trim(line, `"`)
		if line == "" {
			continue
		}
		titles = append(titles, line)
		if len(titles) == maxSuggestions {
			break
		}
	}
	return titles
}

// NoopSuggester is used when the feature is disabled in configuration
type NoopSuggester struct{}

// Suggest always returns no suggestions
func (NoopSuggester) Suggest(context.Context, string) []string {
	return nil
}

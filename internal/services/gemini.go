package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"trendpulse-backend/internal/models"
)

// completionFunc produces raw completion text for a prompt. Tests swap it
// out to simulate upstream failures.
type completionFunc func(ctx context.Context, prompt string) (string, error)

// GeminiService turns structured dashboard input into prompts, submits
// them to Gemini and parses the JSON-shaped answers. Every public method
// resolves upstream failures to a deterministic, locally templated
// fallback so callers always receive a well-formed result.
type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	logger   *zap.Logger
	timeout  time.Duration
	complete completionFunc
}

func NewGeminiService(apiKey, modelName string, timeout time.Duration, logger *zap.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	model.SetTopP(0.95)
	model.ResponseMIMEType = "application/json"

	s := &GeminiService{
		client:  client,
		model:   model,
		logger:  logger,
		timeout: timeout,
	}
	s.complete = s.generate
	return s, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("Gemini returned empty response")
	}
	return text, nil
}

// GenerateSuggestions asks the model for titles, tags and content ideas
// for a topic/platform/style triple.
func (s *GeminiService) GenerateSuggestions(ctx context.Context, topic, platform, style string) (models.SuggestionResult, error) {
	raw, err := s.complete(ctx, suggestionPrompt(topic, platform, style))
	if err != nil {
		s.logger.Warn("suggestion generation failed, serving fallback",
			zap.String("topic", topic), zap.Error(err))
		return FallbackSuggestions(topic, platform, style), nil
	}

	var result models.SuggestionResult
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &result); err != nil {
		s.logger.Warn("suggestion response was not valid JSON, serving fallback",
			zap.String("topic", topic), zap.Error(err))
		return FallbackSuggestions(topic, platform, style), nil
	}
	if len(result.Titles) == 0 || len(result.Tags) == 0 || len(result.ContentIdeas) == 0 {
		s.logger.Warn("suggestion response incomplete, serving fallback",
			zap.String("topic", topic))
		return FallbackSuggestions(topic, platform, style), nil
	}
	return result, nil
}

// AnalyzeContent scores pasted content for viral potential.
func (s *GeminiService) AnalyzeContent(ctx context.Context, content, platform string) (models.AnalysisResult, error) {
	raw, err := s.complete(ctx, analysisPrompt(content, platform))
	if err != nil {
		s.logger.Warn("content analysis failed, serving fallback",
			zap.String("platform", platform), zap.Error(err))
		return FallbackAnalysis(content, platform), nil
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &result); err != nil {
		s.logger.Warn("analysis response was not valid JSON, serving fallback",
			zap.String("platform", platform), zap.Error(err))
		return FallbackAnalysis(content, platform), nil
	}
	if result.ViralScore < 0 || result.ViralScore > 10 ||
		len(result.OptimizedTitles) == 0 || len(result.ViralTags) == 0 ||
		len(result.HookIdeas) == 0 || result.ContentStrategy == "" {
		s.logger.Warn("analysis response incomplete, serving fallback",
			zap.String("platform", platform))
		return FallbackAnalysis(content, platform), nil
	}
	return result, nil
}

// Prompt templates

func suggestionPrompt(topic, platform, style string) string {
	var b strings.Builder
	b.WriteString("You are a content strategist for social media creators.\n\n")
	fmt.Fprintf(&b, "Generate content suggestions for the topic %q targeting %s in a %s style.\n\n", topic, platform, style)
	b.WriteString(`Return ONLY a valid JSON object with exactly these fields:
{"titles": ["..."], "tags": ["..."], "contentIdeas": [{"title": "...", "description": "...", "engagement": "high|medium|low"}]}
Include exactly 5 titles, 8 tags and 3 contentIdeas. No markdown, no commentary.`)
	return b.String()
}

func analysisPrompt(content, platform string) string {
	var b strings.Builder
	b.WriteString("You are a viral content analyst for social media creators.\n\n")
	fmt.Fprintf(&b, "Analyze the following draft content for its viral potential on %s:\n\n%s\n\n", platform, content)
	b.WriteString(`Return ONLY a valid JSON object with exactly these fields:
{"viralScore": 0.0, "optimizedTitles": ["..."], "viralTags": ["..."], "hookIdeas": ["..."], "contentStrategy": "..."}
viralScore is a float between 0 and 10. Include 3 optimizedTitles, 6 viralTags and 3 hookIdeas. No markdown, no commentary.`)
	return b.String()
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

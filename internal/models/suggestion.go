package models

import "time"

// ContentIdea is one concrete video/post concept inside a suggestion set.
type ContentIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Engagement  string `json:"engagement"` // "high" | "medium" | "low"
}

type ContentSuggestion struct {
	ID           int           `json:"id"`
	Topic        string        `json:"topic"`
	Platform     string        `json:"platform"`
	Style        string        `json:"style"`
	Titles       []string      `json:"titles"`
	Tags         []string      `json:"tags"`
	ContentIdeas []ContentIdea `json:"contentIdeas"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type InsertContentSuggestion struct {
	Topic        string        `json:"topic"`
	Platform     string        `json:"platform"`
	Style        string        `json:"style"`
	Titles       []string      `json:"titles"`
	Tags         []string      `json:"tags"`
	ContentIdeas []ContentIdea `json:"contentIdeas"`
}

// SuggestionRequest is the body of POST /api/ai-suggestions.
type SuggestionRequest struct {
	Topic    string `json:"topic" validate:"required,min=1"`
	Platform string `json:"platform" validate:"required,min=1"`
	Style    string `json:"style" validate:"required,min=1"`
}

// SuggestionResult is the shape the AI adapter must always produce,
// whether the upstream call succeeded or the fallback was used.
type SuggestionResult struct {
	Titles       []string      `json:"titles"`
	Tags         []string      `json:"tags"`
	ContentIdeas []ContentIdea `json:"contentIdeas"`
}

// AnalyzeRequest is the body of POST /api/analyze-content.
type AnalyzeRequest struct {
	Content  string `json:"content" validate:"required,min=1"`
	Platform string `json:"platform" validate:"required,min=1"`
}

type AnalysisResult struct {
	ViralScore      float64  `json:"viralScore"`
	OptimizedTitles []string `json:"optimizedTitles"`
	ViralTags       []string `json:"viralTags"`
	HookIdeas       []string `json:"hookIdeas"`
	ContentStrategy string   `json:"contentStrategy"`
}

func (r *SuggestionRequest) Validate() error {
	return validate.Struct(r)
}

func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

package store

import (
	"context"
	"sort"
	"time"

	"trendpulse-backend/internal/models"
)

// CreateContentSuggestion records a generated suggestion set. Suggestions
// are immutable once created; there is no update path.
func (s *Store) CreateContentSuggestion(ctx context.Context, ins models.InsertContentSuggestion) models.ContentSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.ContentSuggestion{
		ID:           s.nextSuggestionID,
		Topic:        ins.Topic,
		Platform:     ins.Platform,
		Style:        ins.Style,
		Titles:       append([]string(nil), ins.Titles...),
		Tags:         append([]string(nil), ins.Tags...),
		ContentIdeas: append([]models.ContentIdea(nil), ins.ContentIdeas...),
		CreatedAt:    time.Now(),
	}
	s.nextSuggestionID++
	s.suggestions[c.ID] = c

	return cloneSuggestion(c)
}

// ListContentSuggestions returns all suggestion history in creation order.
func (s *Store) ListContentSuggestions(ctx context.Context) []models.ContentSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ContentSuggestion, 0, len(s.suggestions))
	for _, c := range s.suggestions {
		out = append(out, cloneSuggestion(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneSuggestion(c models.ContentSuggestion) models.ContentSuggestion {
	c.Titles = append([]string(nil), c.Titles...)
	c.Tags = append([]string(nil), c.Tags...)
	c.ContentIdeas = append([]models.ContentIdea(nil), c.ContentIdeas...)
	return c
}

// Package store is the in-memory repository for all TrendPulse entities.
// It is the sole owner of entity lifecycle and identifier assignment;
// everything it holds is volatile and vanishes on process exit.
package store

import (
	"sync"
	"time"

	"trendpulse-backend/internal/models"
)

// Store keeps one map and one auto-increment counter per entity kind.
// A single mutex guards all of them so every read-merge-write sequence
// is atomic even when handlers run on separate goroutines.
type Store struct {
	mu sync.Mutex

	users       map[int]models.User
	videos      map[int]models.TrendingVideo
	suggestions map[int]models.ContentSuggestion
	projects    map[int]models.Project
	analytics   map[int]models.Analytics

	nextUserID       int
	nextVideoID      int
	nextSuggestionID int
	nextProjectID    int
	nextAnalyticsID  int
}

func New() *Store {
	return &Store{
		users:       make(map[int]models.User),
		videos:      make(map[int]models.TrendingVideo),
		suggestions: make(map[int]models.ContentSuggestion),
		projects:    make(map[int]models.Project),
		analytics:   make(map[int]models.Analytics),

		nextUserID:       1,
		nextVideoID:      1,
		nextSuggestionID: 1,
		nextProjectID:    1,
		nextAnalyticsID:  1,
	}
}

// bumpedAfter returns a timestamp strictly after prev, so updatedAt is
// always observably newer than the state it replaced.
func bumpedAfter(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

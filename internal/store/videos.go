package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"trendpulse-backend/internal/models"
)

func (s *Store) CreateTrendingVideo(ctx context.Context, ins models.InsertTrendingVideo) models.TrendingVideo {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := models.TrendingVideo{
		ID:           s.nextVideoID,
		Title:        ins.Title,
		Platform:     ins.Platform,
		Views:        ins.Views,
		ViralScore:   ins.ViralScore,
		Creator:      ins.Creator,
		Category:     ins.Category,
		ThumbnailURL: cloneStringPtr(ins.ThumbnailURL),
		CreatedAt:    time.Now(),
	}
	s.nextVideoID++
	s.videos[v.ID] = v

	return cloneVideo(v)
}

// ListTrendingVideos applies the optional filters and returns videos
// sorted by viralScore descending, ties broken by ascending id. Platform
// matches exactly, category case-insensitively; "" and "all" disable a
// filter. Unrecognized values simply match nothing.
func (s *Store) ListTrendingVideos(ctx context.Context, f models.VideoFilter) []models.TrendingVideo {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := strings.ToLower(f.Category)

	out := make([]models.TrendingVideo, 0, len(s.videos))
	for _, v := range s.videos {
		if f.Platform != "" && f.Platform != "all" && v.Platform != f.Platform {
			continue
		}
		if category != "" && category != "all" && strings.ToLower(v.Category) != category {
			continue
		}
		out = append(out, cloneVideo(v))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ViralScore != out[j].ViralScore {
			return out[i].ViralScore > out[j].ViralScore
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func cloneVideo(v models.TrendingVideo) models.TrendingVideo {
	v.ThumbnailURL = cloneStringPtr(v.ThumbnailURL)
	return v
}

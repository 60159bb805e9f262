package store

import (
	"context"

	"trendpulse-backend/internal/models"
)

// Seed loads the sample trending videos and the initial analytics
// snapshot the dashboard starts from.
func (s *Store) Seed(ctx context.Context) {
	videos := []models.InsertTrendingVideo{
		{
			Title:        "My Perfect Morning Routine for Productivity",
			Platform:     "youtube",
			Views:        2100000,
			ViralScore:   9.2,
			Creator:      "@productivityguru",
			Category:     "Lifestyle",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1586281380349-632531db7ed4"),
		},
		{
			Title:        "5 Minute Makeup Tutorial ✨",
			Platform:     "tiktok",
			Views:        890000,
			ViralScore:   8.7,
			Creator:      "@beautyhacks101",
			Category:     "Beauty",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1611162617474-5b21e879e113"),
		},
		{
			Title:      "How I Gained 1M Followers in 30 Days",
			Platform:   "youtube",
			Views:      1500000,
			ViralScore: 9.5,
			Creator:    "@growthhacker",
			Category:   "Marketing",
		},
		{
			Title:      "Beginner's Guide to Reels Editing 🎬",
			Platform:   "instagram",
			Views:      620000,
			ViralScore: 8.3,
			Creator:    "@editqueen",
			Category:   "Tech",
		},
		{
			Title:      "Day in My Life as a Remote Dev",
			Platform:   "youtube",
			Views:      450000,
			ViralScore: 7.9,
			Creator:    "@codedaily",
			Category:   "Lifestyle",
		},
		{
			Title:      "Viral TikTok Dance Explained",
			Platform:   "tiktok",
			Views:      1340000,
			ViralScore: 8.8,
			Creator:    "@trendspotter",
			Category:   "Entertainment",
		},
	}
	for _, v := range videos {
		s.CreateTrendingVideo(ctx, v)
	}

	s.CreateAnalytics(ctx, models.InsertAnalytics{
		TotalViews:      2400000,
		ViralScore:      8.7,
		EngagementRate:  15.2,
		GrowthRate:      24,
		VideosPublished: 42,
		NewFollowers:    156000,
		PlatformDistribution: map[string]float64{
			"youtube":   45,
			"tiktok":    35,
			"instagram": 20,
		},
		PerformanceData: models.PerformanceData{
			Daily:  []int64{12000, 19000, 15000, 25000, 22000, 30000, 28000},
			Weekly: []int64{1200000, 1900000, 1500000, 2100000},
		},
	})
}

func strPtr(s string) *string { return &s }

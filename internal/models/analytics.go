package models

import "time"

// PerformanceData holds view-count time series for the dashboard charts.
type PerformanceData struct {
	Daily  []int64 `json:"daily"`
	Weekly []int64 `json:"weekly"`
}

type Analytics struct {
	ID                   int                `json:"id"`
	TotalViews           int64              `json:"totalViews"`
	ViralScore           float64            `json:"viralScore"`
	EngagementRate       float64            `json:"engagementRate"`
	GrowthRate           float64            `json:"growthRate"`
	VideosPublished      int                `json:"videosPublished"`
	NewFollowers         int64              `json:"newFollowers"`
	PlatformDistribution map[string]float64 `json:"platformDistribution"`
	PerformanceData      PerformanceData    `json:"performanceData"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

type InsertAnalytics struct {
	TotalViews           int64              `json:"totalViews" validate:"gte=0"`
	ViralScore           float64            `json:"viralScore" validate:"gte=0,lte=10"`
	EngagementRate       float64            `json:"engagementRate" validate:"gte=0"`
	GrowthRate           float64            `json:"growthRate"`
	VideosPublished      int                `json:"videosPublished" validate:"gte=0"`
	NewFollowers         int64              `json:"newFollowers" validate:"gte=0"`
	PlatformDistribution map[string]float64 `json:"platformDistribution"`
	PerformanceData      PerformanceData    `json:"performanceData"`
}

// UpdateAnalytics carries a partial update. Nil fields are left untouched.
type UpdateAnalytics struct {
	TotalViews           *int64             `json:"totalViews" validate:"omitempty,gte=0"`
	ViralScore           *float64           `json:"viralScore" validate:"omitempty,gte=0,lte=10"`
	EngagementRate       *float64           `json:"engagementRate" validate:"omitempty,gte=0"`
	GrowthRate           *float64           `json:"growthRate"`
	VideosPublished      *int               `json:"videosPublished" validate:"omitempty,gte=0"`
	NewFollowers         *int64             `json:"newFollowers" validate:"omitempty,gte=0"`
	PlatformDistribution map[string]float64 `json:"platformDistribution"`
	PerformanceData      *PerformanceData   `json:"performanceData"`
}

func (r *InsertAnalytics) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateAnalytics) Validate() error {
	return validate.Struct(r)
}

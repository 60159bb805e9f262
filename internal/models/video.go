package models

import "time"

type TrendingVideo struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Platform     string    `json:"platform"` // "youtube" | "tiktok" | "instagram"
	Views        int64     `json:"views"`
	ViralScore   float64   `json:"viralScore"`
	Creator      string    `json:"creator"`
	Category     string    `json:"category"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InsertTrendingVideo struct {
	Title        string  `json:"title" validate:"required,min=1"`
	Platform     string  `json:"platform" validate:"required,oneof=youtube tiktok instagram"`
	Views        int64   `json:"views" validate:"gte=0"`
	ViralScore   float64 `json:"viralScore" validate:"gte=0,lte=10"`
	Creator      string  `json:"creator" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// VideoFilter narrows a trending-video listing. Empty or "all" values
// leave the corresponding dimension unfiltered; category matching is
// case-insensitive.
type VideoFilter struct {
	Platform string
	Category string
}

func (r *InsertTrendingVideo) Validate() error {
	return validate.Struct(r)
}

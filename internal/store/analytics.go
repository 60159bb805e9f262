package store

import (
	"context"
	"time"

	"trendpulse-backend/internal/models"
)

func (s *Store) CreateAnalytics(ctx context.Context, ins models.InsertAnalytics) models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	a := models.Analytics{
		ID:                   s.nextAnalyticsID,
		TotalViews:           ins.TotalViews,
		ViralScore:           ins.ViralScore,
		EngagementRate:       ins.EngagementRate,
		GrowthRate:           ins.GrowthRate,
		VideosPublished:      ins.VideosPublished,
		NewFollowers:         ins.NewFollowers,
		PlatformDistribution: clonePlatformDistribution(ins.PlatformDistribution),
		PerformanceData:      clonePerformanceData(ins.PerformanceData),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	s.nextAnalyticsID++
	s.analytics[a.ID] = a

	return cloneAnalytics(a)
}

// LatestAnalytics returns the snapshot with the greatest createdAt; when
// several share it, the highest id wins. Multiple snapshots may coexist,
// "latest" is not a singleton.
func (s *Store) LatestAnalytics(ctx context.Context) (models.Analytics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest models.Analytics
	found := false
	for _, a := range s.analytics {
		if !found || a.CreatedAt.After(latest.CreatedAt) ||
			(a.CreatedAt.Equal(latest.CreatedAt) && a.ID > latest.ID) {
			latest = a
			found = true
		}
	}
	if !found {
		return models.Analytics{}, false
	}
	return cloneAnalytics(latest), true
}

// UpdateAnalytics merges the non-nil fields of upd over the stored
// snapshot and refreshes updatedAt.
func (s *Store) UpdateAnalytics(ctx context.Context, id int, upd models.UpdateAnalytics) (models.Analytics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.analytics[id]
	if !ok {
		return models.Analytics{}, false
	}

	if upd.TotalViews != nil {
		a.TotalViews = *upd.TotalViews
	}
	if upd.ViralScore != nil {
		a.ViralScore = *upd.ViralScore
	}
	if upd.EngagementRate != nil {
		a.EngagementRate = *upd.EngagementRate
	}
	if upd.GrowthRate != nil {
		a.GrowthRate = *upd.GrowthRate
	}
	if upd.VideosPublished != nil {
		a.VideosPublished = *upd.VideosPublished
	}
	if upd.NewFollowers != nil {
		a.NewFollowers = *upd.NewFollowers
	}
	if upd.PlatformDistribution != nil {
		a.PlatformDistribution = clonePlatformDistribution(upd.PlatformDistribution)
	}
	if upd.PerformanceData != nil {
		a.PerformanceData = clonePerformanceData(*upd.PerformanceData)
	}
	a.UpdatedAt = bumpedAfter(a.UpdatedAt)
	s.analytics[id] = a

	return cloneAnalytics(a), true
}

func cloneAnalytics(a models.Analytics) models.Analytics {
	a.PlatformDistribution = clonePlatformDistribution(a.PlatformDistribution)
	a.PerformanceData = clonePerformanceData(a.PerformanceData)
	return a
}

func clonePlatformDistribution(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func clonePerformanceData(p models.PerformanceData) models.PerformanceData {
	return models.PerformanceData{
		Daily:  append([]int64(nil), p.Daily...),
		Weekly: append([]int64(nil), p.Weekly...),
	}
}

package services

import (
	"sort"

	"crowdreport-be/models"
	"crowdreport-be/store"
)

// DefaultHotspotLimit caps topHotspots when no limit is configured.
const DefaultHotspotLimit = 5

// StatsAggregator computes dashboard summaries over the current store
// contents. Nothing here is persisted; every snapshot is recomputed.
type StatsAggregator struct {
	store           *store.ReportStore
	avgResponseTime string
	hotspotLimit    int
}

func NewStatsAggregator(s *store.ReportStore, avgResponseTime string, hotspotLimit int) *StatsAggregator {
	if hotspotLimit <= 0 {
		hotspotLimit = DefaultHotspotLimit
	}
	return &StatsAggregator{
		store:           s,
		avgResponseTime: avgResponseTime,
		hotspotLimit:    hotspotLimit,
	}
}

// Snapshot computes the summary counts and hotspot ranking.
func (a *StatsAggregator) Snapshot() models.StatsData {
	reports := a.store.List()

	stats := models.StatsData{
		TotalReports:        len(reports),
		AverageResponseTime: a.avgResponseTime,
		TopHotspots:         []string{},
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range reports {
		if r.Status == models.Verified {
			stats.VerifiedReports++
		}
		if r.Status == models.Pending {
			stats.PendingReports++
		}
		if counts[r.Location] == 0 {
			order = append(order, r.Location)
		}
		counts[r.Location]++
	}

	// Stable sort keeps first-seen order for locations with equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > a.hotspotLimit {
		order = order[:a.hotspotLimit]
	}
	stats.TopHotspots = append(stats.TopHotspots, order...)

	return stats
}

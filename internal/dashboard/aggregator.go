package dashboard

import (
	"strings"

	"giveaway/internal/model"
)

// TabAll shows every pickup regardless of status. The other tabs are
// the status values themselves.
const TabAll = "all"

// Stats are the per-status counts shown in the dashboard sidebar.
// Total always equals Pending + Scheduled + Completed.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
}

// ComputeStats folds the pickup set into per-status counts.
func ComputeStats(pickups []model.Pickup) Stats {
	var s Stats
	for _, p := range pickups {
		s.Total++
		switch p.Status {
		case model.StatusPending:
			s.Pending++
		case model.StatusScheduled:
			s.Scheduled++
		case model.StatusCompleted:
			s.Completed++
		}
	}
	return s
}

// Filter returns the pickups matching both the active tab and the
// search term. The term matches case-insensitively against donor name
// or location; an empty term passes everything. Order is preserved and
// the result is always a fresh slice.
func Filter(pickups []model.Pickup, activeTab, searchTerm string) []model.Pickup {
	term := strings.ToLower(searchTerm)

	filtered := make([]model.Pickup, 0, len(pickups))
	for _, p := range pickups {
		if activeTab != TabAll && string(p.Status) != activeTab {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.DonorName), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

package services

import (
	"sort"
	"time"

	"waste-report-server/models"
)

// FrequentSpotLimit is how many locations the dashboard lists as hotspots
const FrequentSpotLimit = 5

// AreaCounts groups complaints by area in first-appearance order
func AreaCounts(complaints []models.Complaint) []models.AreaCount {
	index := make(map[string]int)
	counts := []models.AreaCount{}
	for i := range complaints {
		area := complaints[i].Area()
		if pos, ok := index[area]; ok {
			counts[pos].Count++
			continue
		}
		index[area] = len(counts)
		counts = append(counts, models.AreaCount{Area: area, Count: 1})
	}
	return counts
}

func CountByStatus(complaints []models.Complaint) models.StatusCounts {
	var counts models.StatusCounts
	for i := range complaints {
		switch complaints[i].Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusResolved:
			counts.Resolved++
		}
	}
	return counts
}

// FrequentSpots returns the n most reported exact locations.
// Ties keep first-appearance order.
func FrequentSpots(complaints []models.Complaint, n int) []models.SpotCount {
	index := make(map[string]int)
	spots := []models.SpotCount{}
	for i := range complaints {
		loc := complaints[i].Location
		if pos, ok := index[loc]; ok {
			spots[pos].Count++
			continue
		}
		index[loc] = len(spots)
		spots = append(spots, models.SpotCount{Location: loc, Count: 1})
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].Count > spots[j].Count
	})
	if n >= 0 && len(spots) > n {
		spots = spots[:n]
	}
	return spots
}

// Overdue returns pending complaints whose deadline is strictly before now
func Overdue(complaints []models.Complaint, now time.Time) []models.Complaint {
	overdue := []models.Complaint{}
	for i := range complaints {
		if complaints[i].IsOverdue(now) {
			overdue = append(overdue, complaints[i])
		}
	}
	return overdue
}

// WorkerTaskSummary splits the complaints assigned to worker into pending and completed
func WorkerTaskSummary(worker *models.Worker, complaints []models.Complaint) *models.TaskSummary {
	summary := &models.TaskSummary{
		Worker:    worker.ToResponse(),
		Pending:   []models.Complaint{},
		Completed: []models.Complaint{},
	}
	for i := range complaints {
		c := complaints[i]
		if !c.IsAssignedTo(worker.ID) {
			continue
		}
		if c.IsResolved() {
			summary.Completed = append(summary.Completed, c)
		} else {
			summary.Pending = append(summary.Pending, c)
		}
	}
	summary.Stats = models.TaskStats{
		Pending:       len(summary.Pending),
		Completed:     len(summary.Completed),
		TotalAssigned: len(summary.Pending) + len(summary.Completed),
	}
	return summary
}

// BuildDashboard computes every dashboard aggregate in one pass over the data set
func BuildDashboard(complaints []models.Complaint, now time.Time) *models.Dashboard {
	overdue := Overdue(complaints, now)
	return &models.Dashboard{
		Total:         len(complaints),
		Status:        CountByStatus(complaints),
		Areas:         AreaCounts(complaints),
		FrequentSpots: FrequentSpots(complaints, FrequentSpotLimit),
		OverdueCount:  len(overdue),
		Overdue:       overdue,
	}
}

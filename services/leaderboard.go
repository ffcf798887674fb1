package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"waste-report-server/models"
)

var trophies = []string{"gold", "silver", "bronze"}

// LeaderboardService ranks panchayats by how well they handle complaints
type LeaderboardService struct {
	panchayats PanchayatStore
}

func NewLeaderboardService(panchayats PanchayatStore) *LeaderboardService {
	return &LeaderboardService{panchayats: panchayats}
}

func (s *LeaderboardService) Get(ctx context.Context, order models.LeaderboardOrder) (*models.Leaderboard, error) {
	panchayats, err := s.panchayats.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list panchayats: %w", err)
	}
	return BuildLeaderboard(panchayats, order), nil
}

// ParseLeaderboardOrder maps a query value to an order, defaulting to worst-to-best
func ParseLeaderboardOrder(value string) (models.LeaderboardOrder, error) {
	switch models.LeaderboardOrder(value) {
	case "", models.WorstToBest:
		return models.WorstToBest, nil
	case models.BestToWorst:
		return models.BestToWorst, nil
	default:
		return "", &models.ValidationError{Fields: []string{"order"}}
	}
}

func TierFor(resolutionRate float64) models.PerformanceTier {
	switch {
	case resolutionRate >= 80:
		return models.TierGood
	case resolutionRate >= 70:
		return models.TierAverage
	default:
		return models.TierPoor
	}
}

// BuildLeaderboard sorts a copy of panchayats and attaches ranks, tiers and trophies
func BuildLeaderboard(panchayats []models.Panchayat, order models.LeaderboardOrder) *models.Leaderboard {
	sorted := make([]models.Panchayat, len(panchayats))
	copy(sorted, panchayats)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if order == models.BestToWorst {
			if a.UnaddressedCount != b.UnaddressedCount {
				return a.UnaddressedCount < b.UnaddressedCount
			}
			return a.ResolutionRate > b.ResolutionRate
		}
		if a.UnaddressedCount != b.UnaddressedCount {
			return a.UnaddressedCount > b.UnaddressedCount
		}
		return a.ResolutionRate < b.ResolutionRate
	})

	board := &models.Leaderboard{
		Order:   order,
		Entries: make([]models.LeaderboardEntry, 0, len(sorted)),
	}

	var rateSum float64
	for i, p := range sorted {
		entry := models.LeaderboardEntry{
			Rank:      i + 1,
			Tier:      TierFor(p.ResolutionRate),
			Panchayat: p,
		}
		if order == models.BestToWorst && i < len(trophies) {
			entry.Trophy = trophies[i]
		}
		board.Entries = append(board.Entries, entry)

		board.Summary.TotalResolved += p.ResolvedCount
		board.Summary.TotalUnaddressed += p.UnaddressedCount
		rateSum += p.ResolutionRate
	}
	if len(sorted) > 0 {
		board.Summary.AverageResolutionRate = int(math.Round(rateSum / float64(len(sorted))))
	}
	return board
}

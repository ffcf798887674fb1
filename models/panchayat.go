package models

import "time"

// Panchayat holds the externally computed performance figures of a local body
type Panchayat struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	Name                  string    `json:"name" gorm:"type:varchar(200);not null"`
	Location              string    `json:"location" gorm:"type:varchar(255)"`
	ContactEmail          string    `json:"contact_email,omitempty" gorm:"type:varchar(255)"`
	TotalComplaints       int       `json:"total_complaints" gorm:"default:0"`
	ResolvedCount         int       `json:"resolved_count" gorm:"default:0"`
	UnaddressedCount      int       `json:"unaddressed_count" gorm:"default:0"`
	ResolutionRate        float64   `json:"resolution_rate" gorm:"default:0"`
	AverageResolutionDays float64   `json:"average_resolution_days" gorm:"default:0"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Panchayat model
func (Panchayat) TableName() string {
	return "panchayats"
}

// LeaderboardOrder selects the direction of the panchayat ranking
type LeaderboardOrder string

const (
	WorstToBest LeaderboardOrder = "worst-to-best"
	BestToWorst LeaderboardOrder = "best-to-worst"
)

// PerformanceTier buckets a panchayat by resolution rate
type PerformanceTier string

const (
	TierGood    PerformanceTier = "good"
	TierAverage PerformanceTier = "average"
	TierPoor    PerformanceTier = "poor"
)

type LeaderboardEntry struct {
	Rank      int             `json:"rank"`
	Tier      PerformanceTier `json:"tier"`
	Trophy    string          `json:"trophy,omitempty"`
	Panchayat Panchayat       `json:"panchayat"`
}

type LeaderboardSummary struct {
	TotalResolved         int `json:"total_resolved"`
	TotalUnaddressed      int `json:"total_unaddressed"`
	AverageResolutionRate int `json:"average_resolution_rate"`
}

type Leaderboard struct {
	Order   LeaderboardOrder   `json:"order"`
	Entries []LeaderboardEntry `json:"entries"`
	Summary LeaderboardSummary `json:"summary"`
}

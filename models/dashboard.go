package models

// AreaCount is the number of complaints reported in one area
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// SpotCount is the number of complaints reported at one exact location
type SpotCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type StatusCounts struct {
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

// Dashboard is the admin overview built from every complaint
type Dashboard struct {
	Total         int          `json:"total"`
	Status        StatusCounts `json:"status"`
	Areas         []AreaCount  `json:"areas"`
	FrequentSpots []SpotCount  `json:"frequent_spots"`
	OverdueCount  int          `json:"overdue_count"`
	Overdue       []Complaint  `json:"overdue"`
}

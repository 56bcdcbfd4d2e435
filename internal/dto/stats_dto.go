package dto

// ValueCount is one grouped dimension entry, sorted descending by count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// YearCount is the year dimension's entry (year kept numeric so clients
// can sort and filter without parsing).
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// DirectoryStats is the derived, non-persisted aggregate view. Company
// counts come only from experiences flagged is_current.
type DirectoryStats struct {
	TotalMembers int64        `json:"total_members"`
	ByYear       []YearCount  `json:"by_year"`
	ByLocation   []ValueCount `json:"by_location"`
	ByCompany    []ValueCount `json:"by_company"`
	ByMajor      []ValueCount `json:"by_major"`
}

// FilterOptions feeds the directory filter dropdowns. Years are sorted
// descending (recency first); the rest alphabetically.
type FilterOptions struct {
	Years     []int    `json:"years"`
	Locations []string `json:"locations"`
	Companies []string `json:"companies"`
	Majors    []string `json:"majors"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

package response

// DashboardStatisticsResponse represents the population statistics shown
// on the dashboard
type DashboardStatisticsResponse struct {
	TotalResidents int `json:"total_residents"`
	MaleCount      int `json:"male_count"`
	FemaleCount    int `json:"female_count"`
	DeceasedCount  int `json:"deceased_count"`
}

// TrendPointResponse represents one point of the cumulative population
// trend series
type TrendPointResponse struct {
	Time       string `json:"time"`
	Population int    `json:"population"`
	Mortality  int    `json:"mortality"`
}

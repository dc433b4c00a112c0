package models

type WeeklyProgress struct {
	TotalHours     float64 `json:"totalHours"`
	TotalSeconds   int     `json:"totalSeconds"`
	Percentage     float64 `json:"percentage"`
	RemainingHours float64 `json:"remainingHours"`
	WeekStart      string  `json:"weekStart"`
	WeekEnd        string  `json:"weekEnd"`
}

type DailyStats struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type HourlyStats struct {
	Hour    int     `json:"hour"`
	Minutes float64 `json:"minutes"`
}

// HeatMapData is one cell of the day x hour grid. Day 0 is Monday.
type HeatMapData struct {
	Day     int     `json:"day"`
	Hour    int     `json:"hour"`
	Minutes float64 `json:"minutes"`
}

type StatsSummary struct {
	Weekly  WeeklyProgress `json:"weekly"`
	Daily   []DailyStats   `json:"daily"`
	Hourly  []HourlyStats  `json:"hourly"`
	HeatMap []HeatMapData  `json:"heatMap"`
}

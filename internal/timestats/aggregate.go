package timestats

import (
	"time"

	"focustimer/internal/models"
)

// WeeklyProgress sums the sessions started inside now's week against a goal
// in hours. Percentage is clamped to [0,100] and remaining hours to >= 0; a
// non-positive goal counts as met.
func WeeklyProgress(sessions []models.Session, weeklyGoal float64, now time.Time, locale Locale) models.WeeklyProgress {
	start, end := WeekWindow(now)

	totalSeconds := 0
	for _, s := range sessions {
		if withinInclusive(s.StartTime, start, end) {
			totalSeconds += s.Duration
		}
	}
	totalHours := float64(totalSeconds) / 3600

	percentage := 100.0
	if weeklyGoal > 0 {
		percentage = min(totalHours/weeklyGoal*100, 100)
	}
	percentage = max(percentage, 0)

	return models.WeeklyProgress{
		TotalHours:     totalHours,
		TotalSeconds:   totalSeconds,
		Percentage:     percentage,
		RemainingHours: max(weeklyGoal-totalHours, 0),
		WeekStart:      locale.ShortDate(start),
		WeekEnd:        locale.ShortDate(end),
	}
}

// DailyStats returns Monday..Sunday of now's week. A session belongs to the
// calendar day its start falls in; hours keep four decimals so sub-minute
// sessions stay visible.
func DailyStats(sessions []models.Session, now time.Time, locale Locale) []models.DailyStats {
	weekStart, _ := WeekWindow(now)

	days := make([]models.DailyStats, DaysPerWeek)
	for i := range days {
		dayStart := weekStart.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		totalSeconds := 0
		for _, s := range sessions {
			if withinHalfOpen(s.StartTime, dayStart, dayEnd) {
				totalSeconds += s.Duration
			}
		}

		days[i] = models.DailyStats{
			Date:  locale.Weekday(dayStart.Weekday()),
			Hours: roundTo(float64(totalSeconds)/3600, 4),
		}
	}
	return days
}

// HourlyStats spreads every session over the hours of day it touches, read
// on the wall clock of loc. A session whose start and end share an hour of
// day goes entirely into that bucket, including one that wraps a full day.
// Sessions crossing midnight only fill the start and end buckets.
func HourlyStats(sessions []models.Session, loc *time.Location) []models.HourlyStats {
	var buckets [HoursPerDay]float64

	for _, s := range sessions {
		start := s.StartTime.In(loc)
		end := s.EndTime.In(loc)
		startHour, endHour := start.Hour(), end.Hour()

		if startHour == endHour {
			buckets[startHour] += float64(s.Duration) / 60
			continue
		}

		firstSeconds := (60-start.Minute()-1)*60 + (60 - start.Second())
		buckets[startHour] += float64(firstSeconds) / 60

		for h := startHour + 1; h < endHour; h++ {
			buckets[h] += 60
		}

		lastSeconds := end.Minute()*60 + end.Second()
		buckets[endHour] += float64(lastSeconds) / 60
	}

	result := make([]models.HourlyStats, HoursPerDay)
	for h := range result {
		result[h] = models.HourlyStats{Hour: h, Minutes: roundTo(buckets[h], 2)}
	}
	return result
}

// HeatMapData attributes each session's full duration to the weekday and
// hour it started in. Cells are ordered day-major, Monday first.
func HeatMapData(sessions []models.Session, loc *time.Location) []models.HeatMapData {
	var grid [DaysPerWeek][HoursPerDay]float64

	for _, s := range sessions {
		start := s.StartTime.In(loc)
		grid[MondayIndex(start.Weekday())][start.Hour()] += float64(s.Duration) / 60
	}

	result := make([]models.HeatMapData, 0, HeatMapCells)
	for day := 0; day < DaysPerWeek; day++ {
		for hour := 0; hour < HoursPerDay; hour++ {
			result = append(result, models.HeatMapData{
				Day:     day,
				Hour:    hour,
				Minutes: roundTo(grid[day][hour], 2),
			})
		}
	}
	return result
}

// Summary computes all four views at once.
func Summary(sessions []models.Session, weeklyGoal float64, now time.Time, locale Locale) models.StatsSummary {
	return models.StatsSummary{
		Weekly:  WeeklyProgress(sessions, weeklyGoal, now, locale),
		Daily:   DailyStats(sessions, now, locale),
		Hourly:  HourlyStats(sessions, now.Location()),
		HeatMap: HeatMapData(sessions, now.Location()),
	}
}

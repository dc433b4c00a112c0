package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/timestats"
)

var tierGlyphs = map[timestats.HeatTier]string{
	timestats.TierNone:   "·",
	timestats.TierLow:    "░",
	timestats.TierMedium: "▒",
	timestats.TierHigh:   "▓",
	timestats.TierPeak:   "█",
}

// renderHeatMap prints the day x hour grid, Monday first, one glyph per hour.
func renderHeatMap(w io.Writer, cells []models.HeatMapData, locale timestats.Locale) {
	ceiling := timestats.MaxCellMinutes(cells)

	var grid [timestats.DaysPerWeek][timestats.HoursPerDay]float64
	var peak models.HeatMapData
	for _, c := range cells {
		grid[c.Day][c.Hour] = c.Minutes
		if c.Minutes > peak.Minutes {
			peak = c
		}
	}

	var b strings.Builder
	b.WriteString("     ")
	for hour := 0; hour < timestats.HoursPerDay; hour += 3 {
		fmt.Fprintf(&b, "%-3d", hour)
	}
	b.WriteString("\n")
	for day := 0; day < timestats.DaysPerWeek; day++ {
		fmt.Fprintf(&b, "%-5s", locale.Weekdays[day])
		for hour := 0; hour < timestats.HoursPerDay; hour++ {
			b.WriteString(tierGlyphs[timestats.TierFor(timestats.HeatIntensity(grid[day][hour], ceiling))])
		}
		b.WriteString("\n")
	}
	if peak.Minutes > 0 {
		weekday := time.Weekday((peak.Day + 1) % timestats.DaysPerWeek)
		fmt.Fprintf(&b, "peak: %s %02d:00 (%s)\n", locale.Weekday(weekday), peak.Hour, timestats.FormatCellDuration(peak.Minutes))
	}
	_, _ = io.WriteString(w, b.String())
}

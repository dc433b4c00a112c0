package timestats

import (
	"fmt"
	"math"

	"focustimer/internal/models"
)

// FormatDurationDetailed always renders all three units: "0h 5m 3s".
func FormatDurationDetailed(seconds int) string {
	h, m, s := splitSeconds(seconds)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// FormatDuration drops leading zero units: "1h 0m 4s", "5m 3s", "42s".
func FormatDuration(seconds int) string {
	h, m, s := splitSeconds(seconds)
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatClock renders elapsed seconds as HH:MM:SS for the stopwatch face.
func FormatClock(seconds int) string {
	h, m, s := splitSeconds(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatCellDuration renders heat map minutes: "42s" under a minute,
// otherwise "3m 20s".
func FormatCellDuration(minutes float64) string {
	total := int(math.Round(minutes * 60))
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

func splitSeconds(seconds int) (h, m, s int) {
	if seconds < 0 {
		seconds = 0
	}
	return seconds / 3600, (seconds % 3600) / 60, seconds % 60
}

// HeatTier is one of the five discrete intensity levels of a heat map cell.
type HeatTier int

const (
	TierNone HeatTier = iota
	TierLow
	TierMedium
	TierHigh
	TierPeak
)

// MaxCellMinutes is the normalisation ceiling, never below 1.
func MaxCellMinutes(cells []models.HeatMapData) float64 {
	ceiling := 1.0
	for _, c := range cells {
		ceiling = max(ceiling, c.Minutes)
	}
	return ceiling
}

// HeatIntensity scales minutes against the ceiling into [0,1].
func HeatIntensity(minutes, ceiling float64) float64 {
	if minutes <= 0 {
		return 0
	}
	if ceiling < 1 {
		ceiling = 1
	}
	return min(minutes/ceiling, 1)
}

func TierFor(intensity float64) HeatTier {
	switch {
	case intensity <= 0:
		return TierNone
	case intensity < 0.25:
		return TierLow
	case intensity < 0.5:
		return TierMedium
	case intensity < 0.75:
		return TierHigh
	default:
		return TierPeak
	}
}

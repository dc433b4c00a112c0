package timestats

import (
	"testing"
	"time"

	"focustimer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatDurationDetailed(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0h 0m 0s"},
		{42, "0h 0m 42s"},
		{1800, "0h 30m 0s"},
		{3661, "1h 1m 1s"},
		{-5, "0h 0m 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDurationDetailed(tt.seconds))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0s"},
		{42, "42s"},
		{303, "5m 3s"},
		{3604, "1h 0m 4s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "01:02:03", FormatClock(3723))
	assert.Equal(t, "100:00:00", FormatClock(360000))
}

func TestFormatCellDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatCellDuration(0))
	assert.Equal(t, "30s", FormatCellDuration(0.5))
	assert.Equal(t, "3m 20s", FormatCellDuration(3.3333))
	assert.Equal(t, "60m 0s", FormatCellDuration(60))
}

func TestMaxCellMinutes_FloorOfOne(t *testing.T) {
	assert.Equal(t, 1.0, MaxCellMinutes(nil))
	assert.Equal(t, 1.0, MaxCellMinutes([]models.HeatMapData{{Minutes: 0.4}}))
	assert.Equal(t, 90.0, MaxCellMinutes([]models.HeatMapData{{Minutes: 10}, {Minutes: 90}}))
}

func TestHeatIntensityAndTier(t *testing.T) {
	assert.Equal(t, 0.0, HeatIntensity(0, 100))
	assert.Equal(t, 0.5, HeatIntensity(50, 100))
	assert.Equal(t, 1.0, HeatIntensity(150, 100))
	assert.Equal(t, 0.5, HeatIntensity(0.5, 0))

	assert.Equal(t, TierNone, TierFor(0))
	assert.Equal(t, TierLow, TierFor(0.1))
	assert.Equal(t, TierMedium, TierFor(0.25))
	assert.Equal(t, TierHigh, TierFor(0.5))
	assert.Equal(t, TierPeak, TierFor(0.75))
	assert.Equal(t, TierPeak, TierFor(1))
}

func TestLocale_Labels(t *testing.T) {
	ts := time.Date(2026, time.January, 5, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, "05/01", LocaleES.ShortDate(ts))
	assert.Equal(t, "5/1/2026", LocaleES.Date(ts))
	assert.Equal(t, "07:08:09", LocaleES.Clock(ts))
	assert.Equal(t, "lun", LocaleES.Weekday(ts.Weekday()))
	assert.Equal(t, LocaleEN, LookupLocale("EN"))
	assert.Equal(t, LocaleES, LookupLocale("fr"))
}

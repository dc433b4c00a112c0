package models

const (
	DefaultWeeklyGoal            = 80
	DefaultExitFullscreenOnPause = true

	MinWeeklyGoal = 1
	MaxWeeklyGoal = 168
)

type Settings struct {
	WeeklyGoal            float64 `json:"weeklyGoal" validate:"required|min:1|max:168"`
	ExitFullscreenOnPause bool    `json:"exitFullscreenOnPause"`
}

func DefaultSettings() Settings {
	return Settings{
		WeeklyGoal:            DefaultWeeklyGoal,
		ExitFullscreenOnPause: DefaultExitFullscreenOnPause,
	}
}

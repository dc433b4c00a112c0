package services

import (
	"errors"
	"fmt"

	"focustimer/internal/models"

	"github.com/gookit/validate"
)

var ErrInvalidSettings = errors.New("invalid settings")

// ValidateSettings enforces the weekly goal range accepted at the API and
// CLI boundary.
func ValidateSettings(settings models.Settings) error {
	v := validate.Struct(&settings)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, v.Errors.One())
	}
	if settings.WeeklyGoal < models.MinWeeklyGoal || settings.WeeklyGoal > models.MaxWeeklyGoal {
		return fmt.Errorf("%w: weeklyGoal must be between %d and %d", ErrInvalidSettings, models.MinWeeklyGoal, models.MaxWeeklyGoal)
	}
	return nil
}

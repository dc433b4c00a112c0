package timestats

import (
	"fmt"
	"strings"
	"time"
)

// Locale holds the labels used by the calendar views.
type Locale struct {
	Name string
	// Weekdays is indexed Monday=0.
	Weekdays [DaysPerWeek]string
}

var (
	LocaleES = Locale{
		Name:     "es",
		Weekdays: [DaysPerWeek]string{"lun", "mar", "mié", "jue", "vie", "sáb", "dom"},
	}
	LocaleEN = Locale{
		Name:     "en",
		Weekdays: [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	}
)

// LookupLocale falls back to LocaleES for unknown names.
func LookupLocale(name string) Locale {
	switch strings.ToLower(name) {
	case "en", "en-us", "en-gb":
		return LocaleEN
	default:
		return LocaleES
	}
}

func (l Locale) Weekday(d time.Weekday) string {
	return l.Weekdays[MondayIndex(d)]
}

// ShortDate renders dd/MM.
func (l Locale) ShortDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}

// Date renders d/M/yyyy, the numeric date form used in exports and search.
func (l Locale) Date(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// Clock renders HH:MM:SS on a 24h clock.
func (l Locale) Clock(t time.Time) string {
	return t.Format("15:04:05")
}

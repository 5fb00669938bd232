package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period identifies a recurring note addressed by the current date
type Period int

const (
	PeriodDaily Period = iota
	PeriodWeekly
	PeriodMonthly
	PeriodQuarterly
	PeriodYearly
)

// Periods returns all periods from shortest to longest
func Periods() []Period {
	return []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly}
}

func (p Period) String() string {
	switch p {
	case PeriodDaily:
		return "day"
	case PeriodWeekly:
		return "week"
	case PeriodMonthly:
		return "month"
	case PeriodQuarterly:
		return "quarter"
	case PeriodYearly:
		return "year"
	default:
		return "unknown"
	}
}

// Label is the template label for the period (e.g. "Daily")
func (p Period) Label() string {
	switch p {
	case PeriodDaily:
		return "Daily"
	case PeriodWeekly:
		return "Weekly"
	case PeriodMonthly:
		return "Monthly"
	case PeriodQuarterly:
		return "Quarterly"
	case PeriodYearly:
		return "Yearly"
	default:
		return ""
	}
}

// ParsePeriod resolves "day", "week", "daily", "weekly", etc.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Periods() {
		if s == p.String() || s == strings.ToLower(p.Label()) {
			return p, nil
		}
	}
	if s == "today" {
		return PeriodDaily, nil
	}
	return 0, fmt.Errorf("unknown period %q (expected day, week, month, quarter or year)", s)
}

// NoteName returns the filename of the period's note for now
func (p Period) NoteName(now time.Time) string {
	switch p {
	case PeriodWeekly:
		year, week := now.ISOWeek()
		return fmt.Sprintf("Week %d %d.md", week, year)
	case PeriodMonthly:
		return fmt.Sprintf("%s %d.md", now.Format("Jan"), now.Year())
	case PeriodQuarterly:
		return fmt.Sprintf("Q%d %d.md", Quarter(now), now.Year())
	case PeriodYearly:
		return fmt.Sprintf("%d.md", now.Year())
	default:
		return LongDate(now) + ".md"
	}
}

// Replaces reports whether opening the period rewrites existing content.
// Only the daily note is a write-or-replace target.
func (p Period) Replaces() bool {
	return p == PeriodDaily
}

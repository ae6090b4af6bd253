package utils

import (
	"fmt"
	"strings"
	"time"
)

// Period tokens accepted by the history and ranking commands.
const (
	PeriodWeekly  = "semanal"
	PeriodMonthly = "mensal"
)

// PeriodRange resolves a period token, case-insensitively, to an inclusive
// date range around today. Weekly runs Monday through Sunday of today's week;
// monthly covers the whole calendar month.
func PeriodRange(period string, today time.Time) (start, end time.Time, err error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	switch strings.ToLower(period) {
	case PeriodWeekly:
		// time.Weekday counts Sunday as 0; shift so Monday starts the week.
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)
	case PeriodMonthly:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		// The 28th plus four days lands in the next month for every month
		// length, including leap Februaries.
		next := day.AddDate(0, 0, 28-day.Day()+4)
		end = time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, 0, -1)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
	}

	return start, end, nil
}

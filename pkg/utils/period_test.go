package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodRangeWeekly(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		start time.Time
		end   time.Time
	}{
		{"midweek", time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC), date(2024, time.March, 11), date(2024, time.March, 17)},
		{"on a monday", date(2024, time.March, 11), date(2024, time.March, 11), date(2024, time.March, 17)},
		{"on a sunday", date(2024, time.March, 17), date(2024, time.March, 11), date(2024, time.March, 17)},
		{"across month boundary", date(2024, time.April, 2), date(2024, time.April, 1), date(2024, time.April, 7)},
		{"week spanning two months", date(2024, time.May, 1), date(2024, time.April, 29), date(2024, time.May, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := PeriodRange("semanal", tt.today)
			if err != nil {
				t.Fatalf("PeriodRange error: %v", err)
			}
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("PeriodRange = %v..%v, want %v..%v", start, end, tt.start, tt.end)
			}
			if got := end.Sub(start); got != 6*24*time.Hour {
				t.Errorf("week span = %v, want 144h", got)
			}
			if start.Weekday() != time.Monday {
				t.Errorf("week starts on %v, want Monday", start.Weekday())
			}
		})
	}
}

func TestPeriodRangeMonthly(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		start time.Time
		end   time.Time
	}{
		{"leap february", date(2024, time.February, 10), date(2024, time.February, 1), date(2024, time.February, 29)},
		{"plain february", date(2023, time.February, 28), date(2023, time.February, 1), date(2023, time.February, 28)},
		{"thirty days", date(2024, time.April, 1), date(2024, time.April, 1), date(2024, time.April, 30)},
		{"thirty one days", date(2024, time.January, 31), date(2024, time.January, 1), date(2024, time.January, 31)},
		{"december", date(2024, time.December, 15), date(2024, time.December, 1), date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := PeriodRange("mensal", tt.today)
			if err != nil {
				t.Fatalf("PeriodRange error: %v", err)
			}
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("PeriodRange = %v..%v, want %v..%v", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestPeriodRangeCaseInsensitive(t *testing.T) {
	for _, period := range []string{"SEMANAL", "Mensal", "sEmAnAl"} {
		if _, _, err := PeriodRange(period, date(2024, time.March, 13)); err != nil {
			t.Errorf("PeriodRange(%q) error: %v", period, err)
		}
	}
}

func TestPeriodRangeRejectsUnknownToken(t *testing.T) {
	for _, period := range []string{"diario", "anual", ""} {
		if _, _, err := PeriodRange(period, date(2024, time.March, 13)); err == nil {
			t.Errorf("PeriodRange(%q) succeeded, want error", period)
		}
	}
}

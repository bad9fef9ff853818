package utils

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// TodayKey returns the send-ledger key for the calendar day of now
func TodayKey(now time.Time) string {
	return LedgerKeyPrefix + FormatAPIDate(now)
}

// FormatAPIDate formats t as YYYY-MM-DD using t's own calendar fields (not UTC)
func FormatAPIDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseAPIDate parses a YYYY-MM-DD string as midnight in loc
func ParseAPIDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(APIDateLayout, strings.TrimSpace(s), loc)
}

// IsSameCalendarDay compares year, month and day, ignoring the time of day
func IsSameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays moves t by n calendar days, keeping the wall clock
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDisplayDate renders "M/D(요일)", e.g. "9/7(토)"
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), weekdayNames[t.Weekday()])
}

// FormatKoreanDate renders "M월 D일 (요일)", e.g. "9월 7일 (토)"
func FormatKoreanDate(t time.Time) string {
	return fmt.Sprintf("%d월 %d일 (%s)", int(t.Month()), t.Day(), weekdayNames[t.Weekday()])
}

// FormatMonthDay turns an ISO date "2024-09-08" into "09.08".
// Inputs that are not ISO dates are returned unchanged.
func FormatMonthDay(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[1] + "." + parts[2]
}

// FormatShortDate turns an ISO date "2024-09-08" into "9.8"
func FormatShortDate(isoDate string) string {
	t, err := time.Parse(APIDateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%d.%d", int(t.Month()), t.Day())
}

// DaysBetween returns the number of whole and partial days from a to b, both ISO dates
func DaysBetween(from, to string) (float64, error) {
	start, err := time.Parse(APIDateLayout, from)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", from, err)
	}
	end, err := time.Parse(APIDateLayout, to)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", to, err)
	}
	return end.Sub(start).Hours() / 24, nil
}

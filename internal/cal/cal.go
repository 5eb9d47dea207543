// Package cal implements the continuous month/day time model the rest of
// the application is built on: a signed month index anchored at January
// 1900, validated (month, day) dates, Gregorian month lengths, and the
// German holiday classification.
package cal

import (
	"errors"
	"fmt"
	"time"
)

// EpochYear anchors MonthIndex 0 at January of this year.
const EpochYear = 1900

// ErrInvalidDate is wrapped by every date construction or parse failure.
var ErrInvalidDate = errors.New("invalid date")

// MonthIndex is a continuous month counter. Index 0 is January 1900,
// index 12 is January 1901; negative values reach before the epoch.
// All cross-year month arithmetic reduces to integer arithmetic on this
// index, so no other component carries calendar-carry logic.
type MonthIndex int

// MonthOf returns the index of the given calendar month.
func MonthOf(year int, month time.Month) MonthIndex {
	return MonthIndex((year-EpochYear)*12 + int(month) - 1)
}

// Year returns the calendar year the month falls in.
func (m MonthIndex) Year() int {
	return EpochYear + floorDiv(int(m), 12)
}

// Month returns the calendar month (January..December).
func (m MonthIndex) Month() time.Month {
	return time.Month(floorMod(int(m), 12) + 1)
}

// Name returns the German month name, or its three-letter abbreviation
// if short is true.
func (m MonthIndex) Name(short bool) string {
	name := monthNames[floorMod(int(m), 12)]
	if short {
		return abbreviate(name, 3)
	}
	return name
}

// abbreviate truncates to n characters, not bytes (März → Mär).
func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var monthNames = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli",
	"August", "September", "Oktober", "November", "Dezember",
}

var weekdayNames = [7]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag",
	"Freitag", "Samstag",
}

// WeekdayName returns the German name for a weekday, optionally
// abbreviated to two letters.
func WeekdayName(w time.Weekday, short bool) string {
	name := weekdayNames[w]
	if short {
		return abbreviate(name, 2)
	}
	return name
}

// IsLeapYear applies the Gregorian rule: divisible by 4, except century
// years unless divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(m MonthIndex) int {
	if m.Month() == time.February && IsLeapYear(m.Year()) {
		return 29
	}
	return monthLengths[floorMod(int(m), 12)]
}

// Date is a (month, day) pair. Day is 1-based and valid only if it does
// not exceed DaysInMonth. Dates order by month, then day.
type Date struct {
	Month MonthIndex
	Day   int
}

// NewDate validates day against the month's length.
func NewDate(month MonthIndex, day int) (Date, error) {
	if day < 1 || day > DaysInMonth(month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %04d-%02d",
			ErrInvalidDate, day, month.Year(), month.Month())
	}
	return Date{Month: month, Day: day}, nil
}

// DateOf is the calendar-notation constructor. It panics on invalid
// input and is meant for literals (tables, tests); use NewDate or
// ParseDate for untrusted data.
func DateOf(year int, month time.Month, day int) Date {
	d, err := NewDate(MonthOf(year, month), day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime converts the calendar date of t.
func FromTime(t time.Time) Date {
	return Date{Month: MonthOf(t.Year(), t.Month()), Day: t.Day()}
}

// ParseDate parses an ISO-8601 calendar date (yyyy-mm-dd).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// String formats the date as ISO-8601.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Month.Year(), d.Month.Month(), d.Day)
}

// Time returns the date at midnight UTC. Day arithmetic and weekday
// lookups go through the standard library rather than a hand-rolled
// serial-day scheme.
func (d Date) Time() time.Time {
	return time.Date(d.Month.Year(), d.Month.Month(), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays steps the date by n days, carrying across months and years.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths steps the month index by n, clamping the day to the target
// month's length (January 31 + 1 month = February 28/29).
func (d Date) AddMonths(n int) Date {
	month := d.Month + MonthIndex(n)
	day := d.Day
	if max := DaysInMonth(month); day > max {
		day = max
	}
	return Date{Month: month, Day: day}
}

// Compare returns -1, 0 or +1 ordering d against o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Month != o.Month:
		if d.Month < o.Month {
			return -1
		}
		return 1
	case d.Day != o.Day:
		if d.Day < o.Day {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Min returns the earlier of two dates.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of two dates.
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// floorDiv is integer division rounding toward negative infinity, so
// that month indices before the epoch resolve to the right year.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

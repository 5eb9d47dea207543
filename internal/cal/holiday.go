package cal

import "time"

// Holiday is a bitset of holiday categories matched by a single date.
// A date matches at most one Easter-relative category and at most one
// fixed-date category; the Sunday bit combines freely with either.
type Holiday uint16

const (
	HolidayNone            Holiday = 0
	HolidayNewYear         Holiday = 1
	HolidayGoodFriday      Holiday = 2
	HolidayEasterMonday    Holiday = 4
	HolidayMayDay          Holiday = 8
	HolidayAscension       Holiday = 16
	HolidayPentecostMonday Holiday = 32
	HolidayGermanUnity     Holiday = 64
	HolidayChristmas       Holiday = 128
	HolidaySunday          Holiday = 256
	HolidayReformationDay  Holiday = 512
)

// Has reports whether every bit of mask is set.
func (h Holiday) Has(mask Holiday) bool {
	return h&mask == mask
}

// Classify returns the holiday bitset for a date.
//
// The Easter-relative categories and the fixed-date categories are each
// matched first-wins in a fixed order. The supported Easter offsets never
// overlap, but the order is part of the observed contract and is kept.
func Classify(d Date) Holiday {
	h := HolidayNone

	if d.Weekday() == time.Sunday {
		h |= HolidaySunday
	}

	easter := EasterSunday(d.Month.Year())
	switch {
	case d.AddDays(2) == easter:
		h |= HolidayGoodFriday
	case d.AddDays(-1) == easter:
		h |= HolidayEasterMonday
	case d.AddDays(-39) == easter:
		h |= HolidayAscension
	case d.AddDays(-49) == easter:
		h |= HolidayPentecostMonday
	}

	month := d.Month.Month()
	switch {
	case month == time.January && d.Day == 1:
		h |= HolidayNewYear
	case month == time.May && d.Day == 1:
		h |= HolidayMayDay
	case month == time.October && d.Day == 3:
		h |= HolidayGermanUnity
	case month == time.October && d.Day == 31:
		h |= HolidayReformationDay
	case month == time.December && (d.Day == 25 || d.Day == 26):
		h |= HolidayChristmas
	}

	return h
}

package cal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthIndexRoundTrip(t *testing.T) {
	assert.Equal(t, MonthIndex(0), MonthOf(1900, time.January))
	assert.Equal(t, MonthIndex(11), MonthOf(1900, time.December))
	assert.Equal(t, MonthIndex(12), MonthOf(1901, time.January))
	assert.Equal(t, MonthIndex(-1), MonthOf(1899, time.December))

	for _, m := range []MonthIndex{-25, -13, -1, 0, 1, 11, 12, 1368, 2400} {
		assert.Equal(t, m, MonthOf(m.Year(), m.Month()), "index %d", m)
	}

	m := MonthOf(2014, time.August)
	assert.Equal(t, 2014, m.Year())
	assert.Equal(t, time.August, m.Month())
}

func TestMonthIndexBeforeEpoch(t *testing.T) {
	m := MonthOf(1899, time.November)
	assert.Equal(t, 1899, m.Year())
	assert.Equal(t, time.November, m.Month())
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(MonthOf(2016, time.February)))
	assert.Equal(t, 28, DaysInMonth(MonthOf(2015, time.February)))
	assert.Equal(t, 28, DaysInMonth(MonthOf(2100, time.February)))
	assert.Equal(t, 29, DaysInMonth(MonthOf(2000, time.February)))
	assert.Equal(t, 31, DaysInMonth(MonthOf(2014, time.January)))
	assert.Equal(t, 30, DaysInMonth(MonthOf(2014, time.April)))
	assert.Equal(t, 31, DaysInMonth(MonthOf(2014, time.December)))
}

func TestNewDateValidation(t *testing.T) {
	_, err := NewDate(MonthOf(2015, time.February), 29)
	require.ErrorIs(t, err, ErrInvalidDate)

	d, err := NewDate(MonthOf(2016, time.February), 29)
	require.NoError(t, err)
	assert.Equal(t, "2016-02-29", d.String())

	_, err = NewDate(MonthOf(2016, time.February), 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2014-08-03")
	require.NoError(t, err)
	assert.Equal(t, DateOf(2014, time.August, 3), d)

	for _, bad := range []string{"", "2014-13-01", "2014-02-30", "03.08.2014", "garbage"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestDateOrdering(t *testing.T) {
	a := DateOf(2014, time.August, 3)
	b := DateOf(2014, time.August, 4)
	c := DateOf(2014, time.September, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.True(t, c.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, a, Min(a, c))
	assert.Equal(t, c, Max(a, c))
}

func TestDateArithmetic(t *testing.T) {
	d := DateOf(2014, time.December, 31)
	assert.Equal(t, DateOf(2015, time.January, 1), d.AddDays(1))
	assert.Equal(t, DateOf(2014, time.December, 30), d.AddDays(-1))

	// Month steps clamp the day to the target month's length.
	d = DateOf(2014, time.January, 31)
	assert.Equal(t, DateOf(2014, time.February, 28), d.AddMonths(1))
	assert.Equal(t, DateOf(2016, time.February, 29), DateOf(2016, time.January, 31).AddMonths(1))
	assert.Equal(t, DateOf(2013, time.December, 31), d.AddMonths(-1))

	assert.Equal(t, time.Sunday, DateOf(2014, time.August, 3).Weekday())
	assert.Equal(t, time.Monday, DateOf(2014, time.August, 4).Weekday())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "März", MonthOf(2014, time.March).Name(false))
	assert.Equal(t, "Mär", MonthOf(2014, time.March).Name(true))
	assert.Equal(t, "Sonntag", WeekdayName(time.Sunday, false))
	assert.Equal(t, "Mo", WeekdayName(time.Monday, true))
}

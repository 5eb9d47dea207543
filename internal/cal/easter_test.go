package cal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Reference dates from the published Easter tables.
func TestEasterSundayReference(t *testing.T) {
	want := map[int]Date{
		2013: DateOf(2013, time.March, 31),
		2014: DateOf(2014, time.April, 20),
		2015: DateOf(2015, time.April, 5),
		2016: DateOf(2016, time.March, 27),
		2017: DateOf(2017, time.April, 16),
		2018: DateOf(2018, time.April, 1),
		2019: DateOf(2019, time.April, 21),
		2020: DateOf(2020, time.April, 12),
	}
	for year, d := range want {
		assert.Equal(t, d, EasterSunday(year), "year %d", year)
	}
}

func TestEasterSundayAlwaysMarchOrApril(t *testing.T) {
	for year := 1900; year <= 2099; year++ {
		d := EasterSunday(year)
		m := d.Month.Month()
		assert.True(t, m == time.March || m == time.April, "year %d: %s", year, d)
		assert.Equal(t, year, d.Month.Year(), "year %d", year)
		assert.Equal(t, time.Sunday, d.Weekday(), "year %d: %s", year, d)
	}
}

func TestEasterSundayMemoized(t *testing.T) {
	first := EasterSunday(2014)
	assert.Equal(t, first, EasterSunday(2014))
}

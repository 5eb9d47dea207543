package cal

import (
	"sync"
	"time"
)

var (
	easterMu   sync.Mutex
	easterMemo = map[int]Date{}
)

// EasterSunday computes Easter Sunday of the given year with the Gauss
// algorithm. The result always falls in March or April. Computed years
// are memoized; the memo is an optimization, every entry is re-derivable.
func EasterSunday(year int) Date {
	easterMu.Lock()
	defer easterMu.Unlock()

	if d, ok := easterMemo[year]; ok {
		return d
	}

	g := year % 19
	c := year / 100
	h := (c - c/4 - (9*c+13)/25 + 19*g + 15) % 30
	i := h - (h/28)*(1-(h/28)*(29/(h+1))*((21-g)/11))
	day := i - (year+year/4+i+2-c+c/4)%7 + 28

	var d Date
	if day > 31 {
		d = Date{Month: MonthOf(year, time.April), Day: day - 31}
	} else {
		d = Date{Month: MonthOf(year, time.March), Day: day}
	}
	easterMemo[year] = d
	return d
}

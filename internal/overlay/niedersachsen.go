package overlay

import (
	"time"

	"kalender/internal/cal"
)

// NewNiedersachsen returns the school-vacation overlay for Niedersachsen,
// covering the school years 2012/13 through 2019/20.
func NewNiedersachsen() *VacationOverlay {
	return NewVacationOverlay("ferien-niedersachsen", Style{Fill: vacationFill}, niedersachsen)
}

func span(years [2]int, y1 int, m1 time.Month, d1, y2 int, m2 time.Month, d2 int) Interval {
	return Interval{Years: years, Start: cal.DateOf(y1, m1, d1), End: cal.DateOf(y2, m2, d2)}
}

func day(years [2]int, y int, m time.Month, d int) Interval {
	date := cal.DateOf(y, m, d)
	return Interval{Years: years, Start: date, End: date}
}

// Source: Niedersächsisches Kultusministerium, Ferientermine.
var niedersachsen = []Interval{
	// 2012/13
	span([2]int{2013, 2014}, 2013, time.January, 31, 2013, time.February, 1),   // Winter
	span([2]int{2013, 2014}, 2013, time.March, 16, 2013, time.April, 2),        // Ostern
	day([2]int{2013, 2014}, 2013, time.May, 10),                                // Pfingsten
	day([2]int{2013, 2014}, 2013, time.May, 21),                                // Pfingsten
	span([2]int{2013, 2014}, 2013, time.June, 27, 2013, time.August, 7),        // Sommer
	span([2]int{2013, 2014}, 2013, time.October, 4, 2013, time.October, 18),    // Herbst
	span([2]int{2013, 2014}, 2013, time.December, 23, 2014, time.January, 3),   // Weihnachten
	// 2013/14
	span([2]int{2014, 2015}, 2014, time.January, 30, 2014, time.January, 31),   // Winter
	span([2]int{2014, 2015}, 2014, time.April, 3, 2014, time.April, 22),        // Ostern
	day([2]int{2014, 2015}, 2014, time.May, 2),                                 // Ostern
	day([2]int{2014, 2015}, 2014, time.May, 30),                                // Pfingsten
	day([2]int{2014, 2015}, 2014, time.June, 10),                               // Pfingsten
	span([2]int{2014, 2015}, 2014, time.July, 31, 2014, time.September, 10),    // Sommer
	span([2]int{2014, 2015}, 2014, time.October, 27, 2014, time.November, 8),   // Herbst
	span([2]int{2014, 2015}, 2014, time.December, 22, 2015, time.January, 5),   // Weihnachten
	// 2014/15
	span([2]int{2015, 2016}, 2015, time.February, 2, 2015, time.February, 3),   // Winter
	span([2]int{2015, 2016}, 2015, time.March, 25, 2015, time.April, 10),       // Ostern
	day([2]int{2015, 2016}, 2015, time.May, 15),                                // Pfingsten
	day([2]int{2015, 2016}, 2015, time.May, 26),                                // Pfingsten
	span([2]int{2015, 2016}, 2015, time.July, 23, 2015, time.September, 2),     // Sommer
	span([2]int{2015, 2016}, 2015, time.October, 19, 2015, time.October, 31),   // Herbst
	span([2]int{2015, 2016}, 2015, time.December, 23, 2016, time.January, 6),   // Weihnachten
	// 2015/16
	span([2]int{2016, 2017}, 2016, time.January, 28, 2016, time.January, 29),   // Winter
	span([2]int{2016, 2017}, 2016, time.March, 18, 2016, time.April, 2),        // Ostern
	day([2]int{2016, 2017}, 2016, time.May, 6),                                 // Pfingsten
	day([2]int{2016, 2017}, 2016, time.May, 17),                                // Pfingsten
	span([2]int{2016, 2017}, 2016, time.June, 23, 2016, time.August, 3),        // Sommer
	span([2]int{2016, 2017}, 2016, time.October, 3, 2016, time.October, 15),    // Herbst
	span([2]int{2016, 2017}, 2016, time.December, 21, 2017, time.January, 6),   // Weihnachten
	// 2016/17
	span([2]int{2017, 2018}, 2017, time.January, 30, 2017, time.January, 31),   // Winter
	span([2]int{2017, 2018}, 2017, time.April, 10, 2017, time.April, 22),       // Ostern
	day([2]int{2017, 2018}, 2017, time.May, 26),                                // Pfingsten
	day([2]int{2017, 2018}, 2017, time.June, 6),                                // Pfingsten
	span([2]int{2017, 2018}, 2017, time.June, 22, 2017, time.August, 2),        // Sommer
	span([2]int{2017, 2018}, 2017, time.October, 2, 2017, time.October, 13),    // Herbst
	day([2]int{2017, 2018}, 2017, time.October, 30),                            // Brückentag
	day([2]int{2017, 2018}, 2017, time.October, 31),                            // Reformationstag
	span([2]int{2017, 2018}, 2017, time.December, 22, 2018, time.January, 5),   // Weihnachten
	// 2017/18
	span([2]int{2018, 2019}, 2018, time.February, 1, 2018, time.February, 2),   // Winter
	span([2]int{2018, 2019}, 2018, time.March, 19, 2018, time.April, 3),        // Ostern
	day([2]int{2018, 2019}, 2018, time.April, 30),                              // Pfingsten
	day([2]int{2018, 2019}, 2018, time.May, 11),                                // Pfingsten
	day([2]int{2018, 2019}, 2018, time.May, 22),                                // Pfingsten
	span([2]int{2018, 2019}, 2018, time.June, 28, 2018, time.August, 8),        // Sommer
	span([2]int{2018, 2019}, 2018, time.October, 1, 2018, time.October, 12),    // Herbst
	span([2]int{2018, 2019}, 2018, time.December, 24, 2019, time.January, 4),   // Weihnachten
	// 2018/19
	span([2]int{2019, 2020}, 2019, time.January, 31, 2019, time.February, 1),   // Winter
	span([2]int{2019, 2020}, 2019, time.April, 8, 2019, time.April, 23),        // Ostern
	day([2]int{2019, 2020}, 2019, time.May, 31),                                // Pfingsten
	day([2]int{2019, 2020}, 2019, time.June, 11),                               // Pfingsten
	span([2]int{2019, 2020}, 2019, time.July, 4, 2019, time.August, 14),        // Sommer
	span([2]int{2019, 2020}, 2019, time.October, 4, 2019, time.October, 18),    // Herbst
	span([2]int{2019, 2020}, 2019, time.December, 13, 2020, time.January, 7),   // Weihnachten
}

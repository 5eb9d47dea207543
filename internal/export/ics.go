// Package export publishes the entry store as an iCalendar feed, so
// the ranges kept here show up in any subscribing calendar client.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"kalender/internal/store"
)

const productID = "-//kalender//DE"

// ICS renders every non-deleted entry as an all-day VEVENT spanning its
// range. now is stamped into DTSTAMP; callers pass time.Now().
func ICS(s *store.Store, now time.Time) string {
	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId(productID)
	calendar.SetXWRCalName("Kalender")

	for _, e := range s.Entries() {
		ev := calendar.AddEvent(fmt.Sprintf("entry-%d@kalender.local", e.ID))
		ev.SetDtStampTime(now.UTC())
		ev.SetSummary(summary(e))
		if e.Notes != "" {
			ev.SetDescription(e.Notes)
		}

		// All-day semantics: DTEND is exclusive, so the event runs
		// through the entry's last day.
		ev.SetAllDayStartAt(e.Start.Time())
		ev.SetAllDayEndAt(e.End.AddDays(1).Time())

		ev.SetProperty(ics.ComponentProperty("COLOR"), e.Color.String())
	}

	return calendar.Serialize()
}

// summary falls back to the numbered display name used for untitled
// entries.
func summary(e store.Entry) string {
	if e.Title != "" {
		return e.Title
	}
	return fmt.Sprintf("Eintrag %d", e.ID)
}

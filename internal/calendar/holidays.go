package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/toolrental/tool-rental/pkg/dateutil"
)

// HolidayCalendar counts observed holidays inside a date range.
// The zero value is not usable; build one with NewHolidayCalendar.
type HolidayCalendar struct {
	holidays []*cal.Holiday
}

// NewHolidayCalendar creates a calendar over the given holidays.
// With no arguments it uses the rental holidays: Independence Day and Labor Day.
func NewHolidayCalendar(holidays ...*cal.Holiday) *HolidayCalendar {
	if len(holidays) == 0 {
		holidays = []*cal.Holiday{us.IndependenceDay, us.LaborDay}
	}
	return &HolidayCalendar{holidays: holidays}
}

// ObservedIndependenceDay returns the date July 4 is observed in year.
// Saturday moves to the preceding Friday, Sunday to the following Monday.
func ObservedIndependenceDay(year int) time.Time {
	return observedDate(us.IndependenceDay, year)
}

// LaborDay returns the first Monday of September in year
func LaborDay(year int) time.Time {
	return observedDate(us.LaborDay, year)
}

// ObservedDates returns the observed date of every holiday in year,
// in the order the calendar was built with.
func (hc *HolidayCalendar) ObservedDates(year int) []time.Time {
	dates := make([]time.Time, 0, len(hc.holidays))
	for _, h := range hc.holidays {
		dates = append(dates, observedDate(h, year))
	}
	return dates
}

// CountHolidaysInRange returns how many observed holidays fall strictly
// between start and end. A holiday observed on start or end is not counted.
func (hc *HolidayCalendar) CountHolidaysInRange(start, end time.Time) int {
	start = dateutil.StartOfDay(start)
	end = dateutil.StartOfDay(end)

	count := 0
	for year := start.Year(); year <= end.Year(); year++ {
		for _, observed := range hc.ObservedDates(year) {
			if start.Before(observed) && end.After(observed) {
				count++
			}
		}
	}

	return count
}

// observedDate normalizes cal's result (computed in cal.DefaultLoc) to a UTC date
func observedDate(h *cal.Holiday, year int) time.Time {
	_, observed := h.Calc(year)
	return dateutil.StartOfDay(observed)
}

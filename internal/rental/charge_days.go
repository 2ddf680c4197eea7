package rental

import (
	"time"

	"github.com/toolrental/tool-rental/internal/calendar"
)

// ChargeDayCalculator nets a tool's weekend and holiday exemptions out of a rental period
type ChargeDayCalculator struct {
	holidays *calendar.HolidayCalendar
}

// NewChargeDayCalculator creates a calculator; a nil holidays uses the default rental holidays
func NewChargeDayCalculator(holidays *calendar.HolidayCalendar) *ChargeDayCalculator {
	if holidays == nil {
		holidays = calendar.NewHolidayCalendar()
	}
	return &ChargeDayCalculator{holidays: holidays}
}

// ChargeDays returns the billable days from the day after checkout through the due date.
// Observed holidays never fall on a weekend, so the two exemptions never overlap.
func (c *ChargeDayCalculator) ChargeDays(rentalDays int, tool ToolSpec, checkoutDate, dueDate time.Time) int {
	chargeDays := rentalDays

	if !tool.WeekendCharge {
		chargeDays -= calendar.CountWeekendDays(checkoutDate, rentalDays)
	}
	if !tool.HolidayCharge {
		chargeDays -= c.holidays.CountHolidaysInRange(checkoutDate, dueDate)
	}

	return chargeDays
}

package calendar

import (
	"time"

	"github.com/toolrental/tool-rental/pkg/dateutil"
)

// CountWeekendDays returns how many of the days after start
// (start+1 through start+days) fall on a Saturday or Sunday.
//
// Every full week contributes two weekend days. The leftover days are
// resolved from the ISO weekday of start without walking the calendar:
//   - weekday+rest == 6: the leftovers stop on Saturday
//   - weekday+rest == 13: Sunday start, six leftovers reach Saturday
//   - weekday == 6: Saturday start, leftovers begin on Sunday
//   - weekday < 6, weekday+rest >= 7: leftovers cover Saturday and Sunday
func CountWeekendDays(start time.Time, days int) int {
	if days <= 0 {
		return 0
	}

	fullWeeks := days / 7
	rest := days % 7
	weekendDays := 2 * fullWeeks

	if rest == 0 {
		return weekendDays
	}

	weekday := dateutil.ISOWeekday(start)
	switch {
	case weekday+rest == 6, weekday+rest == 13, weekday == 6:
		weekendDays++
	case weekday+rest >= 7 && weekday < 6:
		weekendDays += 2
	}

	return weekendDays
}

package quiz

import "time"

// DateLayout is the calendar-day format used for daily sets and streaks.
const DateLayout = "2006-01-02"

// Streak is a user's consecutive-day activity. LastActivityDate is empty before the first activity.
type Streak struct {
	Current          int
	Longest          int
	LastActivityDate string
}

// Day formats t as a calendar day in loc.
func Day(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// DaysBetween counts calendar days from one "2006-01-02" day to another.
func DaysBetween(from, to string) (int, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0, err
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0, err
	}
	// both are UTC midnights, so the difference is a whole number of days
	return int(t.Sub(f).Hours() / 24), nil
}

// RecordActivity applies one qualifying activity at now to prev.
// A second activity on the same calendar day changes nothing but the date.
func RecordActivity(prev Streak, now time.Time, loc *time.Location) Streak {
	today := Day(now, loc)
	next := prev

	if prev.LastActivityDate == "" {
		next.Current = 1
	} else {
		delta, err := DaysBetween(prev.LastActivityDate, today)
		switch {
		case err != nil:
			next.Current = 1
		case delta == 0:
		case delta == 1:
			next.Current = prev.Current + 1
		case delta >= 2:
			next.Current = 1
		default:
			// activity dated before the last one (clock moved back)
			return prev
		}
	}

	if next.Current > next.Longest {
		next.Longest = next.Current
	}
	next.LastActivityDate = today
	return next
}

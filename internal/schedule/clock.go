package schedule

import "time"

// IST is the fixed UTC+5:30 zone all schedule lookups run in. No DST.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// LocalTime is a wall-clock position within the week in IST.
type LocalTime struct {
	Day    int // 0=Sunday .. 6=Saturday
	Hour   int
	Minute int
}

// ResolveLocalTime shifts now into IST and extracts day, hour and minute.
func ResolveLocalTime(now time.Time) LocalTime {
	ist := now.In(IST)
	return LocalTime{
		Day:    int(ist.Weekday()),
		Hour:   ist.Hour(),
		Minute: ist.Minute(),
	}
}

func (lt LocalTime) minuteOfDay() int {
	return lt.Hour*60 + lt.Minute
}

package timecard

import (
	"fmt"
	"strings"
	"time"
)

// Workweek marks which weekdays count as working days when the
// aggregator looks for missing submissions. Indexed by time.Weekday.
type Workweek [7]bool

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWorkweek parses a comma-separated list of three-letter weekday
// names, e.g. "Mon,Tue,Wed,Thu,Fri".
func ParseWorkweek(pattern string) (Workweek, error) {
	var week Workweek
	for _, part := range strings.Split(pattern, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return Workweek{}, fmt.Errorf("unknown weekday %q", part)
		}
		week[day] = true
	}
	if week == (Workweek{}) {
		return Workweek{}, fmt.Errorf("workweek pattern %q contains no days", pattern)
	}
	return week, nil
}

// DefaultWorkweek returns Monday through Friday.
func DefaultWorkweek() Workweek {
	var week Workweek
	for d := time.Monday; d <= time.Friday; d++ {
		week[d] = true
	}
	return week
}

// Includes reports whether t falls on a working day.
func (w Workweek) Includes(t time.Time) bool {
	return w[t.Weekday()]
}

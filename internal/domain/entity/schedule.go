package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Day codes used by the feed, Monday first.
var scheduleDayCodes = map[rune]int{
	'L': 0, // lunes
	'M': 1, // martes
	'X': 2, // miércoles
	'J': 3, // jueves
	'V': 4, // viernes
	'S': 5, // sábado
	'D': 6, // domingo
}

// ScheduleClause opens the station on a set of weekdays between two times.
type ScheduleClause struct {
	Days  [7]bool // Indexed Monday=0 .. Sunday=6.
	Start int     // Minutes after midnight.
	End   int     // Minutes after midnight; End <= Start crosses midnight.
}

// Schedule is a parsed weekly opening-hours string such as "L-V: 07:00-22:00; S-D: 24H".
type Schedule struct {
	Clauses []ScheduleClause
}

// ParseSchedule parses the feed's compact schedule format.
func ParseSchedule(raw string) (*Schedule, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return nil, fmt.Errorf("empty schedule")
	}

	schedule := &Schedule{}
	for part := range strings.SplitSeq(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		clause, err := parseScheduleClause(part)
		if err != nil {
			return nil, err
		}
		schedule.Clauses = append(schedule.Clauses, clause)
	}

	if len(schedule.Clauses) == 0 {
		return nil, fmt.Errorf("schedule %q has no clauses", raw)
	}

	return schedule, nil
}

func parseScheduleClause(part string) (ScheduleClause, error) {
	var clause ScheduleClause

	daysPart, hoursPart, ok := strings.Cut(part, ":")
	if !ok {
		return clause, fmt.Errorf("clause %q has no day separator", part)
	}

	days, err := parseScheduleDays(strings.ReplaceAll(daysPart, " ", ""))
	if err != nil {
		return clause, err
	}
	clause.Days = days

	hoursPart = strings.ReplaceAll(hoursPart, " ", "")
	if hoursPart == "24H" {
		clause.Start, clause.End = 0, minutesPerDay

		return clause, nil
	}

	from, to, ok := strings.Cut(hoursPart, "-")
	if !ok {
		return clause, fmt.Errorf("clause %q has no time range", part)
	}
	if clause.Start, err = parseClock(from); err != nil {
		return clause, err
	}
	if clause.End, err = parseClock(to); err != nil {
		return clause, err
	}

	return clause, nil
}

func parseScheduleDays(s string) ([7]bool, error) {
	var days [7]bool
	if s == "" {
		return days, fmt.Errorf("missing day range")
	}

	for token := range strings.SplitSeq(s, ",") {
		runes := []rune(token)
		switch {
		case len(runes) == 1:
			d, ok := scheduleDayCodes[runes[0]]
			if !ok {
				return days, fmt.Errorf("unknown day code %q", token)
			}
			days[d] = true
		case len(runes) == 3 && runes[1] == '-':
			from, okFrom := scheduleDayCodes[runes[0]]
			to, okTo := scheduleDayCodes[runes[2]]
			if !okFrom || !okTo {
				return days, fmt.Errorf("unknown day range %q", token)
			}
			// Ranges may wrap around the week, e.g. S-L.
			for d := from; ; d = (d + 1) % 7 {
				days[d] = true
				if d == to {
					break
				}
			}
		default:
			return days, fmt.Errorf("invalid day range %q", token)
		}
	}

	return days, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	total := hours*60 + minutes
	if total > minutesPerDay {
		return 0, fmt.Errorf("time %q is past midnight", s)
	}

	return total, nil
}

// IsOpenAt reports whether any clause covers t. t should already be in the station's time zone.
func (s *Schedule) IsOpenAt(t time.Time) bool {
	day := (int(t.Weekday()) + 6) % 7
	prevDay := (day + 6) % 7
	minute := t.Hour()*60 + t.Minute()

	for _, c := range s.Clauses {
		if c.End > c.Start {
			if c.Days[day] && minute >= c.Start && minute < c.End {
				return true
			}

			continue
		}

		// Overnight clause: the evening part on its own day, the early part on the next.
		if c.Days[day] && minute >= c.Start {
			return true
		}
		if c.Days[prevDay] && minute < c.End {
			return true
		}
	}

	return false
}

// Availability is the open-now filter of a station search.
type Availability string

const (
	AvailabilityAll    Availability = "all"
	AvailabilityOpen   Availability = "open"
	AvailabilityClosed Availability = "closed"
)

// OpenState evaluates a raw schedule at t. ok is false when the schedule cannot be parsed.
func OpenState(raw string, t time.Time) (open bool, ok bool) {
	schedule, err := ParseSchedule(raw)
	if err != nil {
		return false, false
	}

	return schedule.IsOpenAt(t), true
}

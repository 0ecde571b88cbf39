// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package schedule parses the compact, cron-like tag grammar used to time
// resource lifecycle operations, and matches a parsed schedule against a
// cycle instant.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CycleMinutes is the fixed discrete cycle length, in minutes, that every
// minute term and cycle instant is measured against.
const CycleMinutes = 10

// Cycle is the (day-of-month, ISO weekday, hour, minute) tuple a Schedule is
// tested against. Weekday follows ISO 8601: 1 is Monday, 7 is Sunday.
type Cycle struct {
	Day     int
	Weekday int
	Hour    int
	Minute  int
}

type hourMinute struct {
	hour, minute int
}

type weekdayHourMinute struct {
	weekday, hour, minute int
}

type dayHourMinute struct {
	day, hour, minute int
}

// Schedule is a parsed schedule tag value. The zero value matches nothing.
type Schedule struct {
	dayLiterals     map[int]bool
	dayWildcard     bool
	weekdayLiterals map[int]bool
	hourLiterals    map[int]bool
	hourWildcard    bool
	minuteLiterals  map[int]bool
	compoundHM      []hourMinute
	compoundUTHM    []weekdayHourMinute
	compoundDTHM    []dayHourMinute
}

// ParseError reports why a schedule tag value failed to parse. It always
// carries the offending raw value so callers can log it verbatim.
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse schedule %q: %s", e.Value, e.Reason)
}

func parseErrorf(value, format string, args ...interface{}) *ParseError {
	return &ParseError{Value: value, Reason: fmt.Sprintf(format, args...)}
}

// Parse tokenizes a whitespace-separated schedule tag value and builds a
// Schedule. It rejects unknown keys, malformed literals, and any schedule
// that leaves the day, hour, or minute dimension unconstrained.
//
// Parsing is case-sensitive. Duplicate identical terms are accepted and are
// equivalent to a single copy of the term.
func Parse(value string) (Schedule, error) {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return Schedule{}, parseErrorf(value, "no terms")
	}

	s := Schedule{
		dayLiterals:     map[int]bool{},
		weekdayLiterals: map[int]bool{},
		hourLiterals:    map[int]bool{},
		minuteLiterals:  map[int]bool{},
	}

	for _, tok := range tokens {
		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			return Schedule{}, parseErrorf(value, "term %q is missing '='", tok)
		}
		switch key {
		case "d":
			if val == "_" {
				s.dayWildcard = true
				continue
			}
			day, err := parseTwoDigit(val, 1, 31)
			if err != nil {
				return Schedule{}, parseErrorf(value, "day-of-month term %q: %s", tok, err)
			}
			s.dayLiterals[day] = true
		case "u":
			wd, err := parseWeekday(val)
			if err != nil {
				return Schedule{}, parseErrorf(value, "weekday term %q: %s", tok, err)
			}
			s.weekdayLiterals[wd] = true
		case "H":
			if val == "_" {
				s.hourWildcard = true
				continue
			}
			hour, err := parseTwoDigit(val, 0, 23)
			if err != nil {
				return Schedule{}, parseErrorf(value, "hour term %q: %s", tok, err)
			}
			s.hourLiterals[hour] = true
		case "M":
			minute, err := parseMinute(val)
			if err != nil {
				return Schedule{}, parseErrorf(value, "minute term %q: %s", tok, err)
			}
			s.minuteLiterals[minute] = true
		case "H:M":
			hour, minute, err := parseHourMinute(val)
			if err != nil {
				return Schedule{}, parseErrorf(value, "H:M term %q: %s", tok, err)
			}
			s.compoundHM = append(s.compoundHM, hourMinute{hour, minute})
		case "uTH:M":
			wd, hour, minute, err := parseWeekdayHourMinute(val)
			if err != nil {
				return Schedule{}, parseErrorf(value, "uTH:M term %q: %s", tok, err)
			}
			s.compoundUTHM = append(s.compoundUTHM, weekdayHourMinute{wd, hour, minute})
		case "dTH:M":
			day, hour, minute, err := parseDayHourMinute(val)
			if err != nil {
				return Schedule{}, parseErrorf(value, "dTH:M term %q: %s", tok, err)
			}
			s.compoundDTHM = append(s.compoundDTHM, dayHourMinute{day, hour, minute})
		default:
			return Schedule{}, parseErrorf(value, "unrecognized term key %q", key)
		}
	}

	if err := s.checkConstrained(value); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

// checkConstrained enforces invariant (1) from the schedule grammar: each of
// the day, hour, and minute dimensions must be constrained by at least one
// term, directly or via a compound term that spans it.
func (s Schedule) checkConstrained(value string) error {
	dayConstrained := s.dayWildcard || len(s.dayLiterals) > 0 || len(s.weekdayLiterals) > 0 ||
		len(s.compoundUTHM) > 0 || len(s.compoundDTHM) > 0
	hourConstrained := s.hourWildcard || len(s.hourLiterals) > 0 ||
		len(s.compoundHM) > 0 || len(s.compoundUTHM) > 0 || len(s.compoundDTHM) > 0
	minuteConstrained := len(s.minuteLiterals) > 0 ||
		len(s.compoundHM) > 0 || len(s.compoundUTHM) > 0 || len(s.compoundDTHM) > 0

	if dayConstrained && hourConstrained && minuteConstrained {
		return nil
	}
	var missing []string
	if !dayConstrained {
		missing = append(missing, "day")
	}
	if !hourConstrained {
		missing = append(missing, "hour")
	}
	if !minuteConstrained {
		missing = append(missing, "minute")
	}
	return parseErrorf(value, "dimension(s) not constrained: %s", strings.Join(missing, ", "))
}

// Matches reports whether the schedule matches the given cycle instant, per
// the cycle match predicate: every dimension must be satisfied, either
// jointly by a single compound term or independently by single-dimension
// terms.
func (s Schedule) Matches(c Cycle) bool {
	dayOK := s.dayWildcard || s.dayLiterals[c.Day] || s.weekdayLiterals[c.Weekday]
	hourOK := s.hourWildcard || s.hourLiterals[c.Hour]
	minuteOK := s.minuteLiterals[c.Minute]

	for _, t := range s.compoundHM {
		if t.hour == c.Hour && t.minute == c.Minute {
			hourOK, minuteOK = true, true
		}
	}
	for _, t := range s.compoundUTHM {
		if t.weekday == c.Weekday && t.hour == c.Hour && t.minute == c.Minute {
			dayOK, hourOK, minuteOK = true, true, true
		}
	}
	for _, t := range s.compoundDTHM {
		if t.day == c.Day && t.hour == c.Hour && t.minute == c.Minute {
			dayOK, hourOK, minuteOK = true, true, true
		}
	}
	return dayOK && hourOK && minuteOK
}

// ReduceToCron renders the schedule as a standard 5-field cron
// expression ("minute hour day-of-month month day-of-week"), for the
// subset of schedules expressible without a compound term: the grammar's
// H:M/uTH:M/dTH:M terms pair a specific hour with a specific minute (and,
// for the latter two, a specific weekday or day-of-month), which a plain
// cron field can't represent without the cross product of every hour and
// minute literal also firing. Schedules using any compound term report
// ok=false; schedctl falls back to its own cycle-stepping matcher for
// those.
func (s Schedule) ReduceToCron() (expr string, ok bool) {
	if len(s.compoundHM) > 0 || len(s.compoundUTHM) > 0 || len(s.compoundDTHM) > 0 {
		return "", false
	}

	minuteField := intListField(s.minuteLiterals, false)
	if minuteField == "" {
		return "", false
	}
	hourField := intListField(s.hourLiterals, s.hourWildcard)
	domField := intListField(s.dayLiterals, s.dayWildcard)
	dowField := "*"
	if len(s.weekdayLiterals) > 0 {
		// ISO weekday (1=Monday..7=Sunday) to standard cron (0=Sunday..6=Saturday).
		cronWeekdays := make(map[int]bool, len(s.weekdayLiterals))
		for wd := range s.weekdayLiterals {
			cronWeekdays[wd%7] = true
		}
		dowField = intListField(cronWeekdays, false)
		// A schedule may constrain weekday without also constraining
		// day-of-month; cron requires the unconstrained one to be "*".
		if domField == "" {
			domField = "*"
		}
	} else if domField == "" {
		return "", false
	}

	return fmt.Sprintf("%s %s %s * %s", minuteField, hourField, domField, dowField), true
}

func intListField(set map[int]bool, wildcard bool) string {
	if wildcard {
		return "*"
	}
	if len(set) == 0 {
		return ""
	}
	vals := make([]int, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func parseTwoDigit(val string, min, max int) (int, error) {
	if len(val) != 2 {
		return 0, fmt.Errorf("expected a 2-digit value, got %q", val)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%q is not numeric", val)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%d is out of range [%d, %d]", n, min, max)
	}
	return n, nil
}

func parseWeekday(val string) (int, error) {
	if len(val) != 1 {
		return 0, fmt.Errorf("expected a 1-digit ISO weekday, got %q", val)
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 || n > 7 {
		return 0, fmt.Errorf("%q is not a weekday in [1, 7]", val)
	}
	return n, nil
}

func parseMinute(val string) (int, error) {
	n, err := parseTwoDigit(val, 0, 59)
	if err != nil {
		return 0, err
	}
	if n%CycleMinutes != 0 {
		return 0, fmt.Errorf("minute %q is not a multiple of the %d-minute cycle", val, CycleMinutes)
	}
	return n, nil
}

// parseHourMinute parses the "HH:MM" shape shared by the H:M, uTH:M, and
// dTH:M compound term values.
func parseHourMinute(val string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(val, ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", val)
	}
	hour, err = parseTwoDigit(h, 0, 23)
	if err != nil {
		return 0, 0, fmt.Errorf("hour: %s", err)
	}
	minute, err = parseMinute(m)
	if err != nil {
		return 0, 0, fmt.Errorf("minute: %s", err)
	}
	return hour, minute, nil
}

func parseWeekdayHourMinute(val string) (weekday, hour, minute int, err error) {
	wd, rest, ok := strings.Cut(val, "T")
	if !ok {
		return 0, 0, 0, fmt.Errorf("expected wTHH:MM, got %q", val)
	}
	weekday, err = parseWeekday(wd)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("weekday: %s", err)
	}
	hour, minute, err = parseHourMinute(rest)
	if err != nil {
		return 0, 0, 0, err
	}
	return weekday, hour, minute, nil
}

func parseDayHourMinute(val string) (day, hour, minute int, err error) {
	d, rest, ok := strings.Cut(val, "T")
	if !ok {
		return 0, 0, 0, fmt.Errorf("expected DDTHH:MM, got %q", val)
	}
	day, err = parseTwoDigit(d, 1, 31)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("day: %s", err)
	}
	hour, minute, err = parseHourMinute(rest)
	if err != nil {
		return 0, 0, 0, err
	}
	return day, hour, minute, nil
}

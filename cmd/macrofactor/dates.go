// ABOUTME: Date and time parsing helpers shared by the commands.
// ABOUTME: Handles default ranges and HH:MM entry times.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// defaultRangeDays is how far back ranged views reach when --start is
// omitted.
const defaultRangeDays = 7

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// resolveRange turns optional --start/--end values into an inclusive date
// range. An omitted end means today; an omitted start means defaultRangeDays
// before the end.
func resolveRange(startStr, endStr string) (time.Time, time.Time, error) {
	end := today()
	if endStr != "" {
		var err error
		if end, err = parseDate(endStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	start := end.AddDate(0, 0, -defaultRangeDays)
	if startStr != "" {
		var err error
		if start, err = parseDate(startStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date %s is after end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return start, end, nil
}

// entryTime combines a date with an optional HH:MM time. With no time given,
// entries on today's date use the current time; entries on other days land
// at noon.
func entryTime(date time.Time, timeStr string) (time.Time, error) {
	if timeStr == "" {
		now := time.Now()
		if date.Year() == now.Year() && date.YearDay() == now.YearDay() {
			return now, nil
		}
		return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.Local), nil
	}

	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", timeStr)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local), nil
}

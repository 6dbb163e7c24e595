// Package week computes ISO week numbers and the calendar dates that make up a delivery week.
package week

import "time"

const (
	// SubmissionLead is how many weeks ahead of the current ISO week producers submit offers for.
	SubmissionLead = 2

	// MaxWeekNumber is the highest week an offer can carry: the submission week taken in ISO week 53.
	MaxWeekNumber = 53 + SubmissionLead
)

// DaysOfWeek is the fixed Sunday-first day sequence used for daily quantities.
var DaysOfWeek = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Info describes the current week and the week open for submissions.
type Info struct {
	Current int `json:"current"`
	Next    int `json:"next"`
	Year    int `json:"year"`
}

// Current returns the ISO week of now, the calendar year of now, and the submission week.
// Next is always Current + SubmissionLead; it does not wrap into the following year.
func Current(now time.Time) Info {
	_, isoWeek := now.ISOWeek()

	return Info{
		Current: isoWeek,
		Next:    isoWeek + SubmissionLead,
		Year:    now.Year(),
	}
}

// Dates returns the seven dates, Sunday through Saturday, of the given week of year.
// Week 1 starts on the Sunday on or before January 1; other weeks are whole-week offsets
// from there, so out-of-range week numbers extrapolate linearly.
func Dates(weekNumber, year int) []time.Time {
	firstDay := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	firstWeek := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))
	start := firstWeek.AddDate(0, 0, 7*(weekNumber-1))

	dates := make([]time.Time, 0, len(DaysOfWeek))
	for i := range DaysOfWeek {
		dates = append(dates, start.AddDate(0, 0, i))
	}

	return dates
}

// DayDateMap zips DaysOfWeek with dates. Anything other than exactly seven dates yields an empty map.
func DayDateMap(dates []time.Time) map[string]time.Time {
	if len(dates) != len(DaysOfWeek) {
		return map[string]time.Time{}
	}

	result := make(map[string]time.Time, len(DaysOfWeek))
	for i, day := range DaysOfWeek {
		result[day] = dates[i]
	}

	return result
}

// IsDay reports whether name is one of DaysOfWeek.
func IsDay(name string) bool {
	for _, day := range DaysOfWeek {
		if day == name {
			return true
		}
	}

	return false
}

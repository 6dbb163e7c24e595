package handler

import (
	"fmt"
	"strconv"
	"time"

	"market/internal/delivery/api/response"
	"market/internal/domain/week"

	"github.com/labstack/echo/v4"
)

// WeekHandler serves the week calendar used by offer submission.
type WeekHandler struct {
	now func() time.Time
}

// NewWeekHandler is the constructor for WeekHandler
func NewWeekHandler() *WeekHandler {
	return &WeekHandler{now: time.Now}
}

// CurrentWeekResponse describes the current week and the week open for submissions
type CurrentWeekResponse struct {
	week.Info
	SubmissionDates map[string]string `json:"submissionDates"`
}

// WeekDatesResponse lists the dates of one week
type WeekDatesResponse struct {
	Year  int               `json:"year"`
	Week  int               `json:"week"`
	Dates map[string]string `json:"dates"`
}

// CurrentWeek returns the current week info together with the submission week's dates
func (h *WeekHandler) CurrentWeek(c echo.Context) error {
	info := week.Current(h.now())

	return response.OK(c, CurrentWeekResponse{
		Info:            info,
		SubmissionDates: formatDays(week.DayDateMap(week.Dates(info.Next, info.Year))),
	})
}

// WeekDates returns the Sunday to Saturday dates of a week
func (h *WeekHandler) WeekDates(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid week", map[string]string{"year": "must be a positive number"})
	}

	number, err := strconv.Atoi(c.Param("week"))
	if err != nil || number < 1 || number > week.MaxWeekNumber {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid week",
			map[string]string{"week": fmt.Sprintf("must be between 1 and %d", week.MaxWeekNumber)})
	}

	return response.OK(c, WeekDatesResponse{
		Year:  year,
		Week:  number,
		Dates: formatDays(week.DayDateMap(week.Dates(number, year))),
	})
}

func formatDays(days map[string]time.Time) map[string]string {
	out := make(map[string]string, len(days))
	for day, date := range days {
		out[day] = date.Format(time.DateOnly)
	}

	return out
}

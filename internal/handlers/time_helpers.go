package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(),
	)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		0, 0, 0, 0,
		t.Location(),
	)
}

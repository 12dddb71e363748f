package validators

import (
	"time"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
)

// SlotRange checks an availability slot: a valid date and HH:MM start
// strictly before end.
func SlotRange(date, start, end string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return resource.NewValidationError("date", "must be a valid date (YYYY-MM-DD)")
	}

	s, err := time.Parse("15:04", start)
	if err != nil {
		return resource.NewValidationError("start_time", "must be HH:MM")
	}

	e, err := time.Parse("15:04", end)
	if err != nil {
		return resource.NewValidationError("end_time", "must be HH:MM")
	}

	if !s.Before(e) {
		return resource.NewValidationError("end_time", "must be after start_time")
	}
	return nil
}

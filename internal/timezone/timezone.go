package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location falls back to DefaultTimezone when tz is empty or unknown.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// SlotTime combines a YYYY-MM-DD date and an HH:MM time in tz.
func SlotTime(date, hm, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, Location(tz))
}

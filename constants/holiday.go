package constants

const (
	HolidayStatusFullDay = "Full Day Holiday"
	HolidayStatusHalfDay = "Half Day Holiday"
	HolidayStatusWorking = "Working Day"
)

const (
	HolidayDefaultStartTime = "09:00"
	HolidayDefaultEndTime   = "17:00"
)

// HolidayDateLayout is the identity granularity of a calendar entry.
// Time-of-day lives in StartTime/EndTime, never in Date.
const HolidayDateLayout = "2006-01-02"

func IsValidHolidayStatus(status string) bool {
	switch status {
	case HolidayStatusFullDay, HolidayStatusHalfDay, HolidayStatusWorking:
		return true
	}
	return false
}

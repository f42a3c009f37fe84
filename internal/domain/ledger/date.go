package ledger

import "time"

// DatePattern is the wire format for transaction dates.
const DatePattern = "2006-01-02"

// BusinessZone is the fixed offset all ledger dates are interpreted in.
// The shop operates in UTC+8 regardless of server locale.
var BusinessZone = time.FixedZone("UTC+8", 8*60*60)

// ParseDate parses a YYYY-MM-DD string into midnight of that day in the
// business zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DatePattern, s, BusinessZone)
}

// Today returns midnight of the current day in the business zone.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// StartOfDay truncates t to midnight in the business zone.
func StartOfDay(t time.Time) time.Time {
	t = t.In(BusinessZone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, BusinessZone)
}

// FormatDate renders t as YYYY-MM-DD in the business zone.
func FormatDate(t time.Time) string {
	return t.In(BusinessZone).Format(DatePattern)
}

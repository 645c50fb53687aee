package dates

import "time"

const (
	DateFormat = "2006-01-02"
)

// TodayUTC returns the current UTC calendar date, used as the load_date
// partition key of a snapshot run.
func TodayUTC() string {
	return time.Now().UTC().Format(DateFormat)
}

// MillisToDate converts a millisecond epoch timestamp to its UTC calendar
// date.
func MillisToDate(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(DateFormat)
}

func StringToDate(from string, dateFormat string) (time.Time, error) {
	return time.Parse(dateFormat, from)
}

func DateToString(from time.Time, dateFormat string) string {
	return from.Format(dateFormat)
}

package domain

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format for calendar dates in contributor records
const DateLayout = "2006-01-02"

// Date is a calendar date with day precision, serialized as YYYY-MM-DD.
// Time-of-day is always truncated; comparisons are whole-day.
type Date struct {
	time.Time
}

// DateOf truncates a timestamp to its UTC calendar date
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC calendar date
func Today() Date {
	return DateOf(time.Now())
}

// DaysSince returns the whole number of days from other to d.
// Negative when other is in the future relative to d.
func (d Date) DaysSince(other Date) int {
	return int(d.Sub(other.Time) / (24 * time.Hour))
}

// AddDays returns the date shifted by n calendar days
func (d Date) AddDays(n int) Date {
	return DateOf(d.AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON serializes the date as a YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON parses a YYYY-MM-DD string
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Package types implements special types for BudgetBuddy.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the date in the "2006-01-02" format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both full-date ("2006-01-02") and RFC3339 strings are accepted,
// everything but the calendar date is discarded.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02"
	if strings.Contains(value, "T") {
		pattern = time.RFC3339
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}

// ParseDate parses a string in RFC3339 full-date format and returns the Date
// value it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// MonthShort returns the abbreviated month name of the date, e.g. "Apr".
func (d Date) MonthShort() string {
	return time.Time(d).Format("Jan")
}

// InMonth reports whether the date falls into the calendar month of t.
func (d Date) InMonth(t time.Time) bool {
	day := time.Time(d)
	return day.Year() == t.Year() && day.Month() == t.Month()
}

// InYear reports whether the date falls into the calendar year of t.
func (d Date) InYear(t time.Time) bool {
	return time.Time(d).Year() == t.Year()
}

// Equal reports whether d and e represent the same calendar date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

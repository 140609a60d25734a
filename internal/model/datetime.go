package model

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the wire format for every timestamp in the API and the stats service.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a time.Time that (un)marshals using DateTimeLayout.
type DateTime time.Time

func (d DateTime) Time() time.Time {
	return time.Time(d)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %q", s, DateTimeLayout)
	}
	*d = DateTime(t)
	return nil
}

// FormatDateTime renders t with DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDateTimePtr renders t or returns nil.
func FormatDateTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateTimeLayout)
	return &s
}

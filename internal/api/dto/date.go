package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire layout of a Fecha.
const DateLayout = "2006-01-02"

// Fecha is a calendar date. It is written as "2006-01-02" and accepts either
// that layout or an RFC 3339 timestamp on input.
type Fecha struct {
	time.Time
}

// NewFecha truncates t to its UTC calendar date.
func NewFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler.
func (f Fecha) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Fecha) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fecha must be a string: %w", err)
	}
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*f = NewFecha(t)
			return nil
		}
	}
	return fmt.Errorf("invalid fecha %q", s)
}

func fechaPtr(t *time.Time) *Fecha {
	if t == nil {
		return nil
	}
	f := NewFecha(*t)
	return &f
}

func (f *Fecha) timePtr() *time.Time {
	if f == nil {
		return nil
	}
	t := f.Time
	return &t
}

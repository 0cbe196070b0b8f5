// Package timex holds time helpers shared by the config loaders.
package timex

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
)

// ErrInvalidDuration is returned when a JSON value is neither a duration
// string nor an integer number of nanoseconds.
var ErrInvalidDuration = errors.New("invalid duration")

// Duration wraps time.Duration so JSON configs can say "500ms" as well as 500000000.
type Duration struct {
	time.Duration
}

// MarshalJSON writes the duration in its string form, e.g. "1.5s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either a string understood by time.ParseDuration
// or an integer number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return ErrInvalidDuration
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration unmarshals from JSON either as a string accepted by
// time.ParseDuration ("30s", "1m") or as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration: %v", v)
	}
	return nil
}

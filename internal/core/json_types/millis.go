package json_types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Millis is an instant encoded on the wire as integer milliseconds since epoch.
type Millis struct {
	Time time.Time
}

func NewMillis(t time.Time) Millis {
	return Millis{Time: t}
}

func FromUnixMilli(ms int64) Millis {
	return Millis{Time: time.UnixMilli(ms)}
}

func (m Millis) UnixMilli() int64 {
	return m.Time.UnixMilli()
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.Time.UnixMilli(), 10)), nil
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("failed to parse instant: empty value")
	}

	// Строковое значение: число в кавычках или дата в RFC3339
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("failed to parse instant: %v", err)
		}
		if ms, err := strconv.ParseInt(str, 10, 64); err == nil {
			*m = FromUnixMilli(ms)
			return nil
		}
		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return fmt.Errorf("failed to parse instant: %v", err)
		}
		*m = Millis{Time: parsed}
		return nil
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse instant: %v", err)
	}
	*m = FromUnixMilli(ms)
	return nil
}

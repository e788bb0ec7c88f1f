package wire

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

// Time is a wire timestamp. Strings are RFC 3339, numbers are milliseconds
// since the epoch. The decoded instant is always UTC.
type Time struct {
	time.Time
}

var timeType = reflect.TypeOf(time.Time{})

// layouts tried in order. The last one covers servers that drop the zone.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, layout := range layouts {
			parsed, err := time.Parse(layout, s)
			if err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: timeType}
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + string(data), Type: timeType}
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// Ptr returns the instant or nil when absent.
func (t *Time) Ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// EpochSeconds is a timestamp encoded as whole seconds since the epoch.
type EpochSeconds struct {
	time.Time
}

func (t *EpochSeconds) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + string(data), Type: timeType}
	}
	t.Time = time.Unix(s, 0).UTC()
	return nil
}

func (t *EpochSeconds) Ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

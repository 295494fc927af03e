package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// localeLayouts are the toLocaleString forms browsers wrote into older
// snapshots (ru-RU, en-US, en-GB).
var localeLayouts = []string{
	time.RFC3339Nano,
	"02.01.2006, 15:04:05",
	"1/2/2006, 3:04:05 PM",
	"02/01/2006, 15:04:05",
}

var errEmptyTimestamp = errors.New("empty timestamp")

// Timestamp is a card completion time. Raw holds a stored value that could
// not be parsed; it is written back unchanged.
type Timestamp struct {
	Time time.Time
	Raw  string
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (t Timestamp) String() string {
	if t.Raw != "" {
		return t.Raw
	}
	return t.Time.Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts RFC3339 and the known locale layouts. Any other
// non-empty string is kept as Raw. Non-string values are an error.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return errEmptyTimestamp
	}
	for _, layout := range localeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*t = Timestamp{Time: parsed}
			return nil
		}
	}
	*t = Timestamp{Raw: s}
	return nil
}

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a record instant. It is written as RFC3339 in UTC with
// sub-second precision so transitions on the same day stay ordered.
type Timestamp struct {
	time.Time
}

// accepted on input; the first layout is the one written
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp format (string expected): %w", err)
	}

	if s == "" {
		ts.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp: %s", s)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Time.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(ts.Time.UTC().Format(time.RFC3339Nano))
}

// TimestampPtr converts an optional instant, keeping nil as nil.
func TimestampPtr(t *time.Time) *Timestamp {
	if t == nil || t.IsZero() {
		return nil
	}
	return &Timestamp{Time: *t}
}

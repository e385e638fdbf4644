package internal

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexID is a reference id as clients actually send it: a JSON number, a
// numeric string, a blank string, or null. Anything unparsable normalizes
// to absent instead of failing the request, so validation of required ids
// stays a separate, later step.
type FlexID struct {
	value *int64
}

func FlexIDOf(v int64) FlexID {
	return FlexID{value: &v}
}

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		f.value = nil
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			f.value = nil
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.value = nil
		return nil
	}
	f.value = &parsed
	return nil
}

// Ptr returns the normalized id, nil when absent.
func (f FlexID) Ptr() *int64 {
	return f.value
}

// Get returns the id and whether one is present.
func (f FlexID) Get() (int64, bool) {
	if f.value == nil {
		return 0, false
	}
	return *f.value, true
}

package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Present reports whether a decoded Firestore value counts as set. Nil, empty
// strings, numeric zero and false are treated as absent, matching how the
// dashboard has always read these documents.
func Present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case int:
		return val != 0
	case int32:
		return val != 0
	case int64:
		return val != 0
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case float64:
		return val != 0 && !math.IsNaN(val)
	}
	return true
}

// Lookup returns the first present value among aliases, in order.
func Lookup(data map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := data[key]; ok && Present(v) {
			return v, true
		}
	}
	return nil, false
}

// StringOr resolves aliases to a string, falling back to def.
func StringOr(data map[string]any, aliases []string, def string) string {
	v, ok := Lookup(data, aliases)
	if !ok {
		return def
	}
	return ToString(v)
}

// ToString renders identifiers that were not stored as strings.
func ToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}

// ToInt converts a decoded numeric value, truncating fractions. Non-numeric
// values report false.
func ToInt(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case float32:
		return floatToInt(float64(val))
	case float64:
		return floatToInt(val)
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// ToTime returns the datetime of a decoded Firestore Timestamp. Other types
// have no date conversion and report false.
func ToTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case *time.Time:
		if val != nil {
			return *val, true
		}
	}
	return time.Time{}, false
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

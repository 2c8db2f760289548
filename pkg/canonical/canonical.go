// Package canonical renders attribute values as stable strings. Two values
// are equal for comparison purposes iff their canonical strings are
// byte-for-byte identical; no numeric or semantic tolerance is applied.
package canonical

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the layout used for every date-time value.
const TimeLayout = time.RFC3339Nano

// Format converts a typed attribute value to its canonical string. nil and
// nil pointers map to the empty string.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		return OptionalString(val)
	case bool:
		return Bool(val)
	case *bool:
		if val == nil {
			return ""
		}
		return Bool(*val)
	case int:
		return Int(val)
	case *int:
		return OptionalInt(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case *int64:
		if val == nil {
			return ""
		}
		return strconv.FormatInt(*val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return Float(val)
	case *float64:
		if val == nil {
			return ""
		}
		return Float(*val)
	case time.Time:
		return Time(val)
	case *time.Time:
		return OptionalTime(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func OptionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func Bool(b bool) string {
	return strconv.FormatBool(b)
}

func Int(i int) string {
	return strconv.Itoa(i)
}

func OptionalInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

// Float uses the shortest decimal representation that round-trips.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Time normalises to UTC so the same instant collected in different zones
// formats identically. The zero time formats as empty.
func Time(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

func OptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Time(*t)
}

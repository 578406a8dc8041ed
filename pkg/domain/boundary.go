package domain

import (
	"math"
	"reflect"
	"time"
)

// number extracts a float64 from any Go numeric kind, including defined
// types such as Int. Integers that float64 cannot hold exactly are refused,
// since the refined value would no longer equal the input.
func number(x any) (float64, bool) {
	switch n := x.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case int:
		return exactInt(int64(n))
	}

	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return exactInt(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return exactUint(v.Uint())
	}
	return 0, false
}

func exactInt(i int64) (float64, bool) {
	f := float64(i)
	// 2^63 rounds up from MaxInt64 and has no int64 counterpart.
	if f >= 0x1p63 || int64(f) != i {
		return 0, false
	}
	return f, true
}

func exactUint(u uint64) (float64, bool) {
	f := float64(u)
	if f >= 0x1p64 || uint64(f) != u {
		return 0, false
	}
	return f, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func integral(f float64) bool {
	return math.Round(f) == f
}

// text extracts the string from any value of string kind.
func text(x any) (string, bool) {
	switch s := x.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	}

	v := reflect.ValueOf(x)
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}

// instant extracts a time value. Nil pointers are not date/time values.
func instant(x any) (time.Time, bool) {
	switch t := x.(type) {
	case time.Time:
		return t, true
	case LocalDate:
		return t.Time, true
	case Instant:
		return t.Time, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	case *LocalDate:
		if t != nil {
			return t.Time, true
		}
	case *Instant:
		if t != nil {
			return t.Time, true
		}
	}
	return time.Time{}, false
}

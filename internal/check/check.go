// Package check validates dynamically typed and range-limited arguments
// at the public entry points. Every failure names the offending parameter.
package check

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/ngrash/go-civil/internal/calendar"
	"github.com/ngrash/go-civil/tz"
)

var (
	// ErrInvalidArgument is returned for values of the wrong type or shape.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRange is returned for numeric values outside their domain.
	ErrRange = errors.New("value out of range")
)

// Int returns v as an int64. All integer kinds are accepted, as are
// strings holding a base-10 integer. Floats, nil and strings such as
// "123a" are rejected.
func Int(v any, name string) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: %s must be an integer; got nil", ErrInvalidArgument, name)
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer; got %q", ErrInvalidArgument, name, x)
		}
		return n, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return 0, fmt.Errorf("%w: %s = %d overflows int64", ErrRange, name, u)
		}
		return int64(u), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer; got %T", ErrInvalidArgument, name, v)
	}
}

// TimeZone returns v as a time zone. A *tz.TimeZone is returned as is and
// a string is parsed with tz.Parse. Parse failures wrap both
// ErrInvalidArgument and tz.ErrInvalidZone.
func TimeZone(v any, name string) (*tz.TimeZone, error) {
	switch x := v.(type) {
	case *tz.TimeZone:
		if x == nil {
			return nil, fmt.Errorf("%w: %s must be a time zone; got nil", ErrInvalidArgument, name)
		}
		return x, nil
	case string:
		z, err := tz.Parse(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, err)
		}
		return z, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a time zone; got %T", ErrInvalidArgument, name, v)
	}
}

// Range fails with ErrRange unless lo <= v <= hi.
func Range(v, lo, hi int, name string) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be in range [%d,%d]; %s = %d", ErrRange, name, lo, hi, name, v)
	}
	return nil
}

// Date fails with ErrRange unless month is 1-12 and day exists in that
// month of the proleptic Gregorian year.
func Date(year, month, day int) error {
	if err := Range(month, 1, 12, "month"); err != nil {
		return err
	}
	if err := Range(day, 1, calendar.DaysInMonth(year, month), "day"); err != nil {
		return fmt.Errorf("%04d-%02d: %w", year, month, err)
	}
	return nil
}

// Time fails with ErrRange unless every field is within its clock range.
func Time(hour, minute, second, micros int) error {
	return errors.Join(
		Range(hour, 0, 23, "hour"),
		Range(minute, 0, 59, "minute"),
		Range(second, 0, 59, "second"),
		Range(micros, 0, 999999, "micros"),
	)
}

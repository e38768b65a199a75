// Package civil provides an immutable instant in time with microsecond
// precision, paired with the time zone it is viewed in.
//
// Arithmetic comes in two families. Durations (microseconds through hours)
// move the instant by an exact amount and may change the wall clock across
// a daylight saving transition. Calendar units (days, months and years)
// keep the wall clock and recompute the instant in the same zone. A wall
// time that a transition skips is moved forward by the length of the gap,
// so that 02:30 on a spring-forward night becomes 03:30. A wall time that
// occurs twice resolves to the earlier instant.
//
// Setters that pin the time of day (WithTime and friends) fail with
// ErrInvalidInstant instead of moving the result.
//
// Every operation returns a new *Instant or, when nothing changes, the
// receiver itself. Arithmetic whose result does not fit the int64 second
// count panics with an error wrapping ErrRange.
package civil

import (
	"errors"
	"fmt"
	"time"

	"github.com/ngrash/go-civil/datefmt"
	"github.com/ngrash/go-civil/internal/calendar"
	"github.com/ngrash/go-civil/internal/check"
	"github.com/ngrash/go-civil/tz"
)

var (
	// ErrInvalidArgument is returned for arguments of the wrong type or
	// for text that does not match its pattern.
	ErrInvalidArgument = check.ErrInvalidArgument
	// ErrRange is returned for numeric arguments outside their domain,
	// including dates that do not exist such as 2012-02-30.
	ErrRange = check.ErrRange
	// ErrInvalidZone is returned for unrecognized time zones.
	ErrInvalidZone = tz.ErrInvalidZone
	// ErrUsage is returned for operations a kind of time zone does not
	// support.
	ErrUsage = tz.ErrUsage
	// ErrFormat is returned for malformed patterns.
	ErrFormat = datefmt.ErrFormat

	// ErrConflictingZone is returned by Parse when the text carries a time
	// zone that differs from the one passed in.
	ErrConflictingZone = errors.New("conflicting time zones")
	// ErrInvalidInstant is returned when an exact wall time does not exist
	// in a zone because a daylight saving transition skips it.
	ErrInvalidInstant = errors.New("invalid instant")
	// ErrUnsupportedConversion is returned by ConvertTo for unsupported
	// destination types.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

const (
	microsPerMilli  = 1000
	microsPerSecond = 1000000
	millisPerSecond = 1000
)

// Instant is a point on the time line with microsecond precision together
// with a time zone. The zero value is the Unix epoch in UTC.
type Instant struct {
	sec    int64
	micros int32 // [0, 999999]
	zone   *tz.TimeZone
}

// FromTimestamp returns the instant sec seconds after the epoch. A nil zone
// means UTC.
func FromTimestamp(sec int64, zone *tz.TimeZone) *Instant {
	return &Instant{sec: sec, zone: orUTC(zone)}
}

// FromMillisTimestamp returns the instant ms milliseconds after the epoch.
// Negative values are split with floor division, so -1 is one millisecond
// before the epoch.
func FromMillisTimestamp(ms int64, zone *tz.TimeZone) *Instant {
	return &Instant{
		sec:    calendar.FloorDiv(ms, millisPerSecond),
		micros: int32(calendar.FloorMod(ms, millisPerSecond) * microsPerMilli),
		zone:   orUTC(zone),
	}
}

// FromMicrosTimestamp returns the instant sec seconds and micros
// microseconds after the epoch. It fails with ErrRange unless micros is
// within [0, 999999].
func FromMicrosTimestamp(sec int64, micros int, zone *tz.TimeZone) (*Instant, error) {
	if err := check.Range(micros, 0, microsPerSecond-1, "micros"); err != nil {
		return nil, err
	}
	return &Instant{sec: sec, micros: int32(micros), zone: orUTC(zone)}, nil
}

// Now returns the current instant, truncated to microseconds.
func Now(zone *tz.TimeZone) *Instant {
	t := time.Now()
	return &Instant{sec: t.Unix(), micros: int32(t.Nanosecond() / 1000), zone: orUTC(zone)}
}

// Foreign is an instant from another representation: seconds since the
// epoch and a time zone name accepted by tz.Parse.
type Foreign struct {
	Seconds int64
	Zone    string
}

// CreateFrom converts v to an instant. An *Instant is returned as is;
// time.Time, *time.Time and Foreign values are converted. Other types fail
// with ErrInvalidArgument.
func CreateFrom(v any) (*Instant, error) {
	switch x := v.(type) {
	case *Instant:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *Instant", ErrInvalidArgument)
		}
		return x, nil
	case time.Time:
		return FromTime(x)
	case *time.Time:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *time.Time", ErrInvalidArgument)
		}
		return FromTime(*x)
	case Foreign:
		zone, err := check.TimeZone(x.Zone, "zone")
		if err != nil {
			return nil, err
		}
		return FromTimestamp(x.Seconds, zone), nil
	default:
		return nil, fmt.Errorf("%w: unsupported date type %T", ErrInvalidArgument, v)
	}
}

// FromTime converts t, keeping microsecond precision. The zone is taken
// from the name of t's location; locations without a parseable name, such
// as time.Local, become fixed-offset zones.
func FromTime(t time.Time) (*Instant, error) {
	zone, err := tz.FromLocation(t.Location())
	if err != nil {
		_, offset := t.Zone()
		if zone, err = tz.Fixed(int32(offset)); err != nil {
			return nil, err
		}
	}
	return &Instant{sec: t.Unix(), micros: int32(t.Nanosecond() / 1000), zone: zone}, nil
}

func orUTC(zone *tz.TimeZone) *tz.TimeZone {
	if zone == nil {
		return tz.UTC()
	}
	return zone
}

// Package tz provides the time zones instants are expressed in.
//
// A [TimeZone] is either an identified zone, named by an IANA identifier
// such as "America/New_York" whose offset varies with the instant, or a
// fixed-offset zone such as "+05:00". Time zones are immutable and are
// passed around as *TimeZone. A nil *TimeZone reads as [UTC].
package tz

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ngrash/go-civil/tzdb"
)

var (
	// ErrInvalidZone is returned for strings that are not a recognized
	// time zone, including abbreviations such as "EST".
	ErrInvalidZone = errors.New("invalid time zone")
	// ErrUsage is returned when an operation is not supported by a
	// kind of time zone.
	ErrUsage = errors.New("unsupported time zone operation")
)

// Kind is the variant of a TimeZone.
type Kind uint8

const (
	// Identified zones are named by an IANA identifier.
	Identified Kind = iota
	// FixedOffset zones have a constant offset and no daylight saving time.
	FixedOffset
)

func (k Kind) String() string {
	switch k {
	case Identified:
		return "Identified"
	case FixedOffset:
		return "FixedOffset"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// TimeZone is an identified or fixed-offset time zone.
type TimeZone struct {
	kind   Kind
	name   string
	offset int32     // FixedOffset only
	zone   tzdb.Zone // Identified only
}

const utcName = "UTC"

var utc = sync.OnceValue(func() *TimeZone {
	return &TimeZone{kind: Identified, name: utcName, zone: tzdb.Fixed(utcName, 0)}
})

// UTC returns the shared identified zone "UTC".
func UTC() *TimeZone {
	return utc()
}

// OffsetUTC always fails with ErrUsage: a fixed-offset zone of zero is not
// the identified UTC zone. Use [UTC] instead.
func OffsetUTC() (*TimeZone, error) {
	return nil, fmt.Errorf("%w: fixed-offset zones cannot represent UTC; use tz.UTC()", ErrUsage)
}

// Fixed returns a fixed-offset zone for the given offset east of UTC in
// seconds. Offsets are truncated to whole minutes; the canonical name is
// "±HH:MM".
func Fixed(seconds int32) (*TimeZone, error) {
	minutes := seconds / 60
	if minutes <= -24*60 || minutes >= 24*60 {
		return nil, fmt.Errorf("%w: offset out of range: %d seconds", ErrInvalidZone, seconds)
	}
	return &TimeZone{kind: FixedOffset, name: offsetName(minutes), offset: minutes * 60}, nil
}

func offsetName(minutes int32) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

// get resolves the nil and zero zones to UTC.
func (z *TimeZone) get() *TimeZone {
	if z == nil || z.name == "" {
		return UTC()
	}
	return z
}

// Kind returns the variant of the zone.
func (z *TimeZone) Kind() Kind {
	return z.get().kind
}

// Name returns the canonical name: "UTC", an IANA identifier or "±HH:MM".
func (z *TimeZone) Name() string {
	return z.get().name
}

func (z *TimeZone) String() string {
	return z.Name()
}

// Equal reports whether both zones are of the same kind and have the same
// canonical name.
func (z *TimeZone) Equal(other *TimeZone) bool {
	a, b := z.get(), other.get()
	return a == b || (a.kind == b.kind && a.name == b.name)
}

// IsUTC reports whether z is the identified UTC zone.
func (z *TimeZone) IsUTC() bool {
	return z.Equal(UTC())
}

// UTCOffset returns the offset east of UTC in seconds at the given Unix
// time. Fixed-offset zones ignore the argument.
func (z *TimeZone) UTCOffset(unix int64) int32 {
	return z.Lookup(unix).Seconds
}

// Lookup returns the offset, daylight saving flag and abbreviation in
// effect at the given Unix time. Fixed-offset zones never observe daylight
// saving time and use their name as abbreviation.
func (z *TimeZone) Lookup(unix int64) tzdb.Offset {
	z = z.get()
	switch z.kind {
	case FixedOffset:
		return tzdb.Offset{Seconds: z.offset, Abbrev: z.name}
	default:
		return z.zone.Lookup(unix)
	}
}

// Location returns a *time.Location for the zone. Identified zones are
// loaded with time.LoadLocation; fixed-offset zones map to time.FixedZone.
func (z *TimeZone) Location() (*time.Location, error) {
	z = z.get()
	switch {
	case z.kind == FixedOffset:
		return time.FixedZone(z.name, int(z.offset)), nil
	case z.name == utcName:
		return time.UTC, nil
	default:
		loc, err := time.LoadLocation(z.name)
		if err != nil {
			return nil, fmt.Errorf("load location %q: %w", z.name, err)
		}
		return loc, nil
	}
}

// FromLocation returns the zone for loc's name. Locations whose names are
// not parseable zones, such as time.Local or time.FixedZone("EST", ...),
// yield an error wrapping ErrInvalidZone.
func FromLocation(loc *time.Location) (*TimeZone, error) {
	if loc == nil {
		return UTC(), nil
	}
	return Parse(loc.String())
}

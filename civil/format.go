package civil

import (
	"fmt"
	"time"

	"github.com/ngrash/go-civil/datefmt"
	"github.com/ngrash/go-civil/internal/calendar"
	"github.com/ngrash/go-civil/internal/check"
	"github.com/ngrash/go-civil/tz"
)

// Common patterns for Format and Parse.
const (
	MySQLDateTime = "Y-m-d H:i:s"
	MySQLDate     = "Y-m-d"
	ISO8601       = `Y-m-d\TH:i:sO`
	// ISO8601UTC expects an instant in UTC; the trailing Z is literal.
	ISO8601UTC = `Y-m-d\TH:i:s.u\Z`
	// Salesforce expects an instant in UTC; the offset is literal.
	Salesforce = `Y-m-d\TH:i:s+0000`
	Cookie     = "l, d-M-y H:i:s T"
)

// Format renders i in its zone according to a PHP date()-style pattern.
// See datefmt.Format for the tokens. Malformed patterns fail with
// ErrFormat.
func (i *Instant) Format(pattern string) (string, error) {
	return datefmt.Format(i.value(), pattern)
}

func (i *Instant) value() datefmt.Value {
	zone := i.Zone()
	off := zone.Lookup(i.sec)
	dt := calendar.FromUnix(i.sec + int64(off.Seconds))
	return datefmt.Value{
		Year:   dt.Year,
		Month:  dt.Month,
		Day:    dt.Day,
		Hour:   dt.Hour,
		Minute: dt.Minute,
		Second: dt.Second,
		Micros: int(i.micros),
		Offset: off.Seconds,
		DST:    off.DST,
		Zone:   zone.Name(),
		Abbrev: off.Abbrev,
		Unix:   i.sec,
	}
}

func (i *Instant) String() string {
	return fmt.Sprintf("Instant[timestamp=%d micros=%d zone=%s]", i.sec, i.micros, i.Zone())
}

// Parse reads an instant from text according to a PHP date()-style pattern.
//
// Fields missing from the pattern default to 1970-01-01 00:00:00.000000.
// The zone is taken from the text if the pattern has a zone token, else
// from zone; if both are given they must be equal or Parse fails with
// ErrConflictingZone. With neither, the text is read as UTC.
//
// Text that does not match the pattern fails with ErrInvalidArgument and
// ErrFormat, dates and times that do not exist with ErrRange, and wall
// times skipped by a daylight saving transition with ErrInvalidInstant.
func Parse(text, pattern string, zone *tz.TimeZone) (*Instant, error) {
	p, err := datefmt.Parse(text, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if p.Has(datefmt.FieldZone) {
		embedded, err := check.TimeZone(p.Zone, "zone")
		if err != nil {
			return nil, err
		}
		if zone != nil && !zone.Equal(embedded) {
			return nil, fmt.Errorf("%w: %q has zone %s, want %s", ErrConflictingZone, text, embedded, zone)
		}
		zone = embedded
	}
	zone = orUTC(zone)

	if err := check.Range(p.Micros, 0, microsPerSecond-1, "micros"); err != nil {
		return nil, err
	}
	if p.Has(datefmt.FieldUnix) {
		return &Instant{sec: p.Unix, micros: int32(p.Micros), zone: zone}, nil
	}

	dt := calendar.DateTime{Year: 1970, Month: 1, Day: 1}
	if p.Has(datefmt.FieldYear) {
		dt.Year = p.Year
	}
	if p.Has(datefmt.FieldMonth) {
		dt.Month = p.Month
	}
	if p.Has(datefmt.FieldDay) {
		dt.Day = p.Day
	}
	dt.Hour, dt.Minute, dt.Second = p.Hour, p.Minute, p.Second
	if err := check.Date(dt.Year, dt.Month, dt.Day); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", text, err)
	}
	if err := check.Time(dt.Hour, dt.Minute, dt.Second, p.Micros); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", text, err)
	}

	sec, exact := resolve(zone, dt)
	if !exact {
		return nil, fmt.Errorf("%w: %q does not exist in %s", ErrInvalidInstant, text, zone)
	}
	return &Instant{sec: sec, micros: int32(p.Micros), zone: zone}, nil
}

// ToTime returns i as a time.Time in the corresponding location.
func (i *Instant) ToTime() (time.Time, error) {
	loc, err := i.Zone().Location()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(i.sec, int64(i.micros)*1000).In(loc), nil
}

// ConvertTo stores i in dst, which must be an **Instant or a *time.Time.
// Other destinations fail with ErrUnsupportedConversion.
func (i *Instant) ConvertTo(dst any) error {
	switch d := dst.(type) {
	case **Instant:
		*d = i
	case *time.Time:
		t, err := i.ToTime()
		if err != nil {
			return err
		}
		*d = t
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedConversion, dst)
	}
	return nil
}

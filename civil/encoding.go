package civil

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ngrash/go-civil/tz"
)

// textPattern is the pattern of the text encoding. Identified zones are
// appended in brackets, as in "2013-03-10T03:30:00.000000-07:00[America/Los_Angeles]".
const textPattern = `Y-m-d\TH:i:s.uP`

// MarshalText implements encoding.TextMarshaler.
func (i *Instant) MarshalText() ([]byte, error) {
	zone := i.Zone()
	view := i
	if zone.UTCOffset(i.sec)%60 != 0 {
		// Offsets with seconds, such as local mean time, do not survive
		// the ±HH:MM form.
		view = i.WithTimeZone(tz.UTC())
	}
	s, err := view.Format(textPattern)
	if err != nil {
		return nil, err
	}
	if zone.Kind() == tz.Identified {
		s += "[" + zone.Name() + "]"
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The offset fixes the
// instant; a bracketed zone name selects the zone it is viewed in.
func (i *Instant) UnmarshalText(text []byte) error {
	s := string(text)
	var zone *tz.TimeZone
	if open := strings.IndexByte(s, '['); open >= 0 && strings.HasSuffix(s, "]") {
		z, err := tz.Parse(s[open+1 : len(s)-1])
		if err != nil {
			return err
		}
		zone, s = z, s[:open]
	}
	parsed, err := Parse(s, textPattern, nil)
	if err != nil {
		return err
	}
	if zone != nil {
		parsed = parsed.WithTimeZone(zone)
	}
	*i = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (i *Instant) MarshalYAML() (any, error) {
	text, err := i.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar in
// the text encoding.
func (i *Instant) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar instant", ErrInvalidArgument, node.Line)
	}
	return i.UnmarshalText([]byte(node.Value))
}

// Value implements driver.Valuer. Instants are stored in the text
// encoding, which keeps microseconds and the zone.
func (i *Instant) Value() (driver.Value, error) {
	text, err := i.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Scan implements sql.Scanner. It accepts the text encoding, integer Unix
// timestamps (read as UTC) and time.Time values.
func (i *Instant) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return i.UnmarshalText([]byte(v))
	case []byte:
		return i.UnmarshalText(v)
	case int64:
		*i = *FromTimestamp(v, nil)
		return nil
	case time.Time:
		parsed, err := FromTime(v)
		if err != nil {
			return err
		}
		*i = *parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into Instant", ErrInvalidArgument, src)
	}
}

package tz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ngrash/go-civil/tzdb"
)

var (
	// offsetPattern matches ±H, ±HH, ±HHMM, ±HH:MM and ±H:MM.
	offsetPattern = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2}))?$`)
	// abbrevPattern matches strings that read as zone abbreviations.
	abbrevPattern = regexp.MustCompile(`^[A-Z]{2,6}$`)
	// identifierPattern matches the shape of IANA identifiers. Every
	// element starts with a letter, which rules out embedded dates.
	identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_+-]*(/[A-Za-z][A-Za-z0-9_+-]*)*$`)
)

// Parse parses an IANA identifier, a UTC offset or "UTC" (in any case)
// against the default database. Abbreviations are rejected.
func Parse(s string) (*TimeZone, error) {
	return ParseIn(tzdb.Default(), s)
}

// ParseIn is like Parse but resolves identifiers against db.
func ParseIn(db tzdb.Database, s string) (*TimeZone, error) {
	if strings.EqualFold(s, utcName) {
		return UTC(), nil
	}
	if offsetPattern.MatchString(s) {
		return parseOffset(s)
	}
	return parseIdentified(db, s)
}

// ParseIdentified parses "UTC" or an IANA identifier. Offsets are rejected.
func ParseIdentified(s string) (*TimeZone, error) {
	if strings.EqualFold(s, utcName) {
		return UTC(), nil
	}
	return parseIdentified(tzdb.Default(), s)
}

// ParseOffset parses a UTC offset such as "+0500" or "-04:00".
// Identifiers, including "UTC", are rejected.
func ParseOffset(s string) (*TimeZone, error) {
	return parseOffset(s)
}

func parseOffset(s string) (*TimeZone, error) {
	m := offsetPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q is not a UTC offset", ErrInvalidZone, s)
	}
	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	if hours > 23 || minutes > 59 {
		return nil, fmt.Errorf("%w: offset out of range: %q", ErrInvalidZone, s)
	}
	total := int32(hours*60 + minutes)
	if m[1] == "-" {
		total = -total
	}
	return &TimeZone{kind: FixedOffset, name: offsetName(total), offset: total * 60}, nil
}

func parseIdentified(db tzdb.Database, s string) (*TimeZone, error) {
	if abbrevPattern.MatchString(s) {
		return nil, fmt.Errorf("%w: %q: time zones cannot be specified by abbreviations; use UTC offsets or time zone identifiers", ErrInvalidZone, s)
	}
	if !identifierPattern.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidZone, s)
	}
	zone, err := db.Load(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidZone, err)
	}
	return &TimeZone{kind: Identified, name: s, zone: zone}, nil
}

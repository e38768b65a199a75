package datefmt

import (
	"fmt"
	"strings"
)

// Field is a set of fields read by Parse.
type Field uint16

const (
	FieldYear Field = 1 << iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMicros
	FieldZone
	FieldUnix
)

// Parsed holds the fields read from a string. Fields that are absent from
// the pattern are zero; use Has to tell them apart.
type Parsed struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Micros               int

	// Zone is the zone text as written, except that "Z" reads as "UTC".
	Zone string
	// Unix is set by the U token.
	Unix int64

	Fields Field
}

// Has reports whether all of the given fields were read.
func (p Parsed) Has(f Field) bool {
	return p.Fields&f == f
}

// Parse reads text according to pattern. The numeric tokens are
// d j m n Y y H G h g i s u v U, the name tokens are D l M F a A and the
// zone tokens are e T O P p. Weekday names are matched but ignored.
//
// Parse checks syntax only: a month of 13 or a day of 31 in April are
// returned as read.
func Parse(text, pattern string) (Parsed, error) {
	p := parser{s: text}
	var out Parsed
	pm := -1
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' {
			i++
			if i == len(pattern) {
				return Parsed{}, fmt.Errorf("%w: trailing backslash in %q", ErrFormat, pattern)
			}
			c = pattern[i]
		} else if isLetter(c) {
			p.next = 0
			if i+1 < len(pattern) {
				p.next = pattern[i+1]
			}
			if err := p.token(c, &out, &pm); err != nil {
				return Parsed{}, fmt.Errorf("%w: parsing %q as %q: %s", ErrFormat, text, pattern, err)
			}
			continue
		}
		if !p.consume(c) {
			return Parsed{}, p.mismatch(text, pattern, fmt.Sprintf("expected %q", c))
		}
	}
	if p.s != "" {
		return Parsed{}, p.mismatch(text, pattern, fmt.Sprintf("unparsed text %q", p.s))
	}
	if pm >= 0 {
		if !out.Has(FieldHour) || out.Hour < 1 || out.Hour > 12 {
			return Parsed{}, fmt.Errorf("%w: parsing %q as %q: meridiem requires an hour in [1,12]", ErrFormat, text, pattern)
		}
		out.Hour = out.Hour%12 + 12*pm
	}
	return out, nil
}

type parser struct {
	s    string
	next byte // pattern byte after the current token, 0 at the end
}

// maxYearDigits bounds Y so that any year of an int64 Unix time fits.
const maxYearDigits = 12

// numericTokens read digits without a delimiter of their own.
const numericTokens = "djmnYyHGhgisuvU"

func (p *parser) mismatch(text, pattern, what string) error {
	return fmt.Errorf("%w: parsing %q as %q: %s at offset %d", ErrFormat, text, pattern, what, len(text)-len(p.s))
}

func (p *parser) token(c byte, out *Parsed, pm *int) error {
	var ok bool
	switch c {
	case 'd', 'j':
		out.Day, ok = p.num(1, 2)
		out.Fields |= FieldDay
	case 'm', 'n':
		out.Month, ok = p.num(1, 2)
		out.Fields |= FieldMonth
	case 'M', 'F':
		var idx int
		if idx, ok = p.name(monthNames[:]); ok {
			out.Month = idx + 1
		}
		out.Fields |= FieldMonth
	case 'D', 'l':
		_, ok = p.name(weekdayNames[:])
	case 'Y':
		// Years past 9999 read in full unless another number follows
		// without a separator.
		digits := maxYearDigits
		if p.next != 0 && strings.IndexByte(numericTokens, p.next) >= 0 {
			digits = 4
		}
		neg := p.consume('-')
		if !neg {
			p.consume('+')
		}
		out.Year, ok = p.num(1, digits)
		if neg {
			out.Year = -out.Year
		}
		out.Fields |= FieldYear
	case 'y':
		out.Year, ok = p.num(2, 2)
		if out.Year < 70 {
			out.Year += 2000
		} else {
			out.Year += 1900
		}
		out.Fields |= FieldYear
	case 'H', 'G', 'h', 'g':
		out.Hour, ok = p.num(1, 2)
		out.Fields |= FieldHour
	case 'i':
		out.Minute, ok = p.num(2, 2)
		out.Fields |= FieldMinute
	case 's':
		out.Second, ok = p.num(2, 2)
		out.Fields |= FieldSecond
	case 'u':
		out.Micros, ok = p.fraction(6)
		out.Fields |= FieldMicros
	case 'v':
		var ms int
		ms, ok = p.fraction(3)
		out.Micros = ms * 1000
		out.Fields |= FieldMicros
	case 'a', 'A':
		switch {
		case len(p.s) >= 2 && strings.EqualFold(p.s[:2], "am"):
			*pm = 0
		case len(p.s) >= 2 && strings.EqualFold(p.s[:2], "pm"):
			*pm = 1
		default:
			return fmt.Errorf("expected am or pm at %q", p.s)
		}
		p.s = p.s[2:]
		return nil
	case 'U':
		out.Unix, ok = p.signed()
		out.Fields |= FieldUnix
	case 'e', 'T', 'O', 'P', 'p':
		out.Zone, ok = p.zone()
		out.Fields |= FieldZone
	default:
		return fmt.Errorf("unknown token %q", c)
	}
	if !ok {
		return fmt.Errorf("token %q does not match %q", c, p.s)
	}
	return nil
}

// num reads between min and max decimal digits.
func (p *parser) num(min, max int) (int, bool) {
	i, n := 0, 0
	for i < len(p.s) && i < max && isDigit(p.s[i]) {
		n = n*10 + int(p.s[i]-'0')
		i++
	}
	if i < min {
		return 0, false
	}
	p.s = p.s[i:]
	return n, true
}

// fraction reads up to digits decimal digits as the leading digits of a
// fraction scaled to 10^digits, so ".5" and ".500000" read the same.
func (p *parser) fraction(digits int) (int, bool) {
	before := len(p.s)
	n, ok := p.num(1, digits)
	for read := before - len(p.s); ok && read < digits; read++ {
		n *= 10
	}
	return n, ok
}

// signed reads an optionally signed decimal integer.
func (p *parser) signed() (int64, bool) {
	neg := false
	switch {
	case p.consume('-'):
		neg = true
	case p.consume('+'):
	}
	i := 0
	var n int64
	for i < len(p.s) && i < 18 && isDigit(p.s[i]) {
		n = n*10 + int64(p.s[i]-'0')
		i++
	}
	if i == 0 || (i < len(p.s) && isDigit(p.s[i])) {
		return 0, false
	}
	p.s = p.s[i:]
	if neg {
		n = -n
	}
	return n, true
}

func (p *parser) name(names []string) (int, bool) {
	idx, n := lookupName(names, p.s)
	if idx < 0 {
		return 0, false
	}
	p.s = p.s[n:]
	return idx, true
}

// zone reads a UTC offset (±H, ±HH, ±HHMM, ±HH:MM) or a run of identifier
// characters starting with a letter.
func (p *parser) zone() (string, bool) {
	if p.s == "" {
		return "", false
	}
	if c := p.s[0]; c == '+' || c == '-' {
		i := 1 + countDigits(p.s[1:], 2)
		if i == 1 {
			return "", false
		}
		switch {
		case i < len(p.s) && p.s[i] == ':' && countDigits(p.s[i+1:], 2) == 2:
			i += 3
		case countDigits(p.s[i:], 2) == 2:
			i += 2
		}
		z := p.s[:i]
		p.s = p.s[i:]
		return z, true
	}
	if !isLetter(p.s[0]) {
		return "", false
	}
	i := 1
	for i < len(p.s) && isZoneByte(p.s[i]) {
		i++
	}
	z := p.s[:i]
	p.s = p.s[i:]
	if z == "Z" {
		z = "UTC"
	}
	return z, true
}

func (p *parser) consume(c byte) bool {
	if p.s != "" && p.s[0] == c {
		p.s = p.s[1:]
		return true
	}
	return false
}

func countDigits(s string, max int) int {
	i := 0
	for i < len(s) && i < max && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isZoneByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '/' || c == '+' || c == '-'
}

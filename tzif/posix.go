package tzif

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ngrash/go-civil/internal/calendar"
)

// Rule is a parsed POSIX TZ string such as "PST8PDT,M3.2.0,M11.1.0". It
// describes local time after the last transition of a TZif file.
type Rule struct {
	Std LocalTimeType
	DST LocalTimeType // zero unless HasDST

	HasDST bool
	Start  RuleDate // switch to DST, in standard local time
	End    RuleDate // switch back, in daylight local time
}

// RuleDateForm is the syntax a transition date was written in.
type RuleDateForm byte

const (
	// Julian is "Jn": day 1-365, February 29 is never counted.
	Julian RuleDateForm = 'J'
	// ZeroBased is "n": day 0-365, February 29 is counted in leap years.
	ZeroBased RuleDateForm = 'n'
	// MonthWeekDay is "Mm.w.d": weekday d of week w (5 = last) of month m.
	MonthWeekDay RuleDateForm = 'M'
)

// RuleDate is one transition of a Rule.
type RuleDate struct {
	Form    RuleDateForm
	Day     int // Julian and ZeroBased
	Month   int // MonthWeekDay
	Week    int // MonthWeekDay
	Weekday int // MonthWeekDay, 0=Sunday
	Time    int // seconds after local midnight; may be negative or exceed a day
}

// ErrInvalidRule is returned for TZ strings that cannot be parsed.
var ErrInvalidRule = errors.New("invalid TZ string")

// ParseRule parses a POSIX TZ string including the extensions of RFC 8536
// section 3.3.1 (hours in -167..167 for transition times).
func ParseRule(s string) (*Rule, error) {
	p := ruleParser{s: s}
	r, ok := p.rule()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	return r, nil
}

// Lookup returns the local time type in effect at the given Unix time.
func (r *Rule) Lookup(unix int64) LocalTimeType {
	if !r.HasDST {
		return r.Std
	}
	year := calendar.FromUnix(unix + int64(r.Std.Offset)).Year

	// The latest transition at or before unix is within a year of it.
	// Starts win ties so that rules covering a whole year stay in DST.
	latest := int64(math.MinInt64)
	cur := r.Std
	for y := year - 1; y <= year+1; y++ {
		if s := r.Start.unix(y, r.Std.Offset); s <= unix && s >= latest {
			latest, cur = s, r.DST
		}
		if e := r.End.unix(y, r.DST.Offset); e <= unix && e > latest {
			latest, cur = e, r.Std
		}
	}
	return cur
}

func (d RuleDate) unix(year int, offset int32) int64 {
	var days int64
	switch d.Form {
	case Julian:
		n := d.Day - 1
		if n >= 31+28 && calendar.IsLeapYear(year) {
			n++
		}
		days = calendar.DaysFromCivil(year, 1, 1) + int64(n)
	case ZeroBased:
		days = calendar.DaysFromCivil(year, 1, 1) + int64(d.Day)
	case MonthWeekDay:
		days = calendar.DaysFromCivil(year, d.Month, calendar.NthWeekdayOfMonth(year, d.Month, d.Week, d.Weekday))
	}
	return days*calendar.SecondsPerDay + int64(d.Time) - int64(offset)
}

// String renders the date in TZ string syntax.
func (d RuleDate) String() string {
	var b strings.Builder
	switch d.Form {
	case Julian:
		fmt.Fprintf(&b, "J%d", d.Day)
	case ZeroBased:
		fmt.Fprintf(&b, "%d", d.Day)
	case MonthWeekDay:
		fmt.Fprintf(&b, "M%d.%d.%d", d.Month, d.Week, d.Weekday)
	}
	if d.Time != defaultRuleTime {
		b.WriteByte('/')
		b.WriteString(formatOffset(d.Time))
	}
	return b.String()
}

const defaultRuleTime = 2 * calendar.SecondsPerHour

func formatOffset(sec int) string {
	sign := ""
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	h, m, s := sec/3600, sec%3600/60, sec%60
	switch {
	case s != 0:
		return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
	case m != 0:
		return fmt.Sprintf("%s%d:%02d", sign, h, m)
	default:
		return fmt.Sprintf("%s%d", sign, h)
	}
}

type ruleParser struct {
	s string
}

func (p *ruleParser) rule() (*Rule, bool) {
	var r Rule
	var ok bool
	if r.Std.Abbrev, ok = p.name(); !ok {
		return nil, false
	}
	off, ok := p.offset(24)
	if !ok {
		return nil, false
	}
	// TZ strings count offsets west of Greenwich as positive.
	r.Std.Offset = int32(-off)
	if p.s == "" {
		return &r, true
	}

	r.HasDST = true
	r.DST.DST = true
	if r.DST.Abbrev, ok = p.name(); !ok {
		return nil, false
	}
	if p.s == "" || p.s[0] == ',' {
		r.DST.Offset = r.Std.Offset + calendar.SecondsPerHour
	} else {
		if off, ok = p.offset(24); !ok {
			return nil, false
		}
		r.DST.Offset = int32(-off)
	}

	if p.s == "" {
		// Default rules per tzcode.
		p.s = ",M3.2.0,M11.1.0"
	}
	if !p.consume(',') {
		return nil, false
	}
	if r.Start, ok = p.date(); !ok || !p.consume(',') {
		return nil, false
	}
	if r.End, ok = p.date(); !ok || p.s != "" {
		return nil, false
	}
	return &r, true
}

// name reads an abbreviation: three or more letters, or any run of
// characters enclosed in angle brackets.
func (p *ruleParser) name() (string, bool) {
	if p.s == "" {
		return "", false
	}
	if p.s[0] == '<' {
		end := strings.IndexByte(p.s, '>')
		if end < 0 {
			return "", false
		}
		name := p.s[1:end]
		p.s = p.s[end+1:]
		return name, len(name) >= 3
	}
	i := 0
	for i < len(p.s) && isLetter(p.s[i]) {
		i++
	}
	if i < 3 {
		return "", false
	}
	name := p.s[:i]
	p.s = p.s[i:]
	return name, true
}

// offset reads [+-]hh[:mm[:ss]] and returns seconds.
func (p *ruleParser) offset(maxHour int) (int, bool) {
	neg := false
	switch {
	case p.consume('+'):
	case p.consume('-'):
		neg = true
	}
	h, ok := p.num(0, maxHour)
	if !ok {
		return 0, false
	}
	off := h * calendar.SecondsPerHour
	if p.consume(':') {
		m, ok := p.num(0, 59)
		if !ok {
			return 0, false
		}
		off += m * calendar.SecondsPerMinute
		if p.consume(':') {
			s, ok := p.num(0, 59)
			if !ok {
				return 0, false
			}
			off += s
		}
	}
	if neg {
		off = -off
	}
	return off, true
}

func (p *ruleParser) date() (RuleDate, bool) {
	var d RuleDate
	var ok bool
	switch {
	case p.consume('J'):
		d.Form = Julian
		if d.Day, ok = p.num(1, 365); !ok {
			return d, false
		}
	case p.consume('M'):
		d.Form = MonthWeekDay
		if d.Month, ok = p.num(1, 12); !ok || !p.consume('.') {
			return d, false
		}
		if d.Week, ok = p.num(1, 5); !ok || !p.consume('.') {
			return d, false
		}
		if d.Weekday, ok = p.num(0, 6); !ok {
			return d, false
		}
	default:
		d.Form = ZeroBased
		if d.Day, ok = p.num(0, 365); !ok {
			return d, false
		}
	}
	d.Time = defaultRuleTime
	if p.consume('/') {
		if d.Time, ok = p.offset(24*7 - 1); !ok {
			return d, false
		}
	}
	return d, true
}

func (p *ruleParser) num(min, max int) (int, bool) {
	i, n := 0, 0
	for i < len(p.s) && '0' <= p.s[i] && p.s[i] <= '9' {
		n = n*10 + int(p.s[i]-'0')
		if n > max {
			return 0, false
		}
		i++
	}
	if i == 0 || n < min {
		return 0, false
	}
	p.s = p.s[i:]
	return n, true
}

func (p *ruleParser) consume(c byte) bool {
	if p.s != "" && p.s[0] == c {
		p.s = p.s[1:]
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Package datefmt formats and parses civil date-times with PHP date()-style
// patterns such as "Y-m-d H:i:s".
//
// Every ASCII letter in a pattern is a token; a backslash makes the next
// byte literal and all other bytes are copied or matched verbatim. Names
// of months and weekdays are English.
package datefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ngrash/go-civil/internal/calendar"
)

// ErrFormat is returned for malformed patterns and for text that does not
// match its pattern.
var ErrFormat = errors.New("invalid format")

// Value is a civil date-time in a zone, as rendered by Format.
type Value struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Micros               int

	Offset int32  // seconds east of UTC
	DST    bool   // daylight saving time in effect
	Zone   string // zone identifier or "±HH:MM"
	Abbrev string // zone abbreviation
	Unix   int64  // seconds since the epoch
}

// Format renders v according to pattern.
//
//	day:   d D j l N S w z
//	week:  W
//	month: F m M n t
//	year:  L o Y y
//	time:  a A g G h H i s u v
//	zone:  e I O P p T Z
//	full:  c r U
//
// Unknown letters and a trailing backslash yield an error wrapping
// ErrFormat.
func Format(v Value, pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' {
			i++
			if i == len(pattern) {
				return "", fmt.Errorf("%w: trailing backslash in %q", ErrFormat, pattern)
			}
			b.WriteByte(pattern[i])
			continue
		}
		if !isLetter(c) {
			b.WriteByte(c)
			continue
		}
		if !v.appendToken(&b, c) {
			return "", fmt.Errorf("%w: unknown token %q at offset %d in %q", ErrFormat, c, i, pattern)
		}
	}
	return b.String(), nil
}

// mustFormat is Format for the composite tokens, whose patterns are known
// to be valid.
func (v Value) mustFormat(pattern string) string {
	s, err := Format(v, pattern)
	if err != nil {
		panic(err)
	}
	return s
}

func (v Value) appendToken(b *strings.Builder, c byte) bool {
	switch c {
	// Day
	case 'd':
		pad2(b, v.Day)
	case 'D':
		b.WriteString(weekdayNames[v.weekday()][:3])
	case 'j':
		b.WriteString(strconv.Itoa(v.Day))
	case 'l':
		b.WriteString(weekdayNames[v.weekday()])
	case 'N':
		b.WriteString(strconv.Itoa(isoWeekday(v.weekday())))
	case 'S':
		b.WriteString(ordinalSuffix(v.Day))
	case 'w':
		b.WriteString(strconv.Itoa(v.weekday()))
	case 'z':
		b.WriteString(strconv.Itoa(calendar.DayOfYear(v.Year, v.Month, v.Day)))

	// Week
	case 'W':
		_, week := isoWeek(v.Year, v.Month, v.Day)
		pad2(b, week)

	// Month
	case 'F':
		b.WriteString(monthNames[v.Month-1])
	case 'm':
		pad2(b, v.Month)
	case 'M':
		b.WriteString(monthNames[v.Month-1][:3])
	case 'n':
		b.WriteString(strconv.Itoa(v.Month))
	case 't':
		b.WriteString(strconv.Itoa(calendar.DaysInMonth(v.Year, v.Month)))

	// Year
	case 'L':
		b.WriteString(boolDigit(calendar.IsLeapYear(v.Year)))
	case 'o':
		year, _ := isoWeek(v.Year, v.Month, v.Day)
		writeYear(b, year)
	case 'Y':
		writeYear(b, v.Year)
	case 'y':
		pad2(b, int(calendar.FloorMod(int64(v.Year), 100)))

	// Time
	case 'a':
		b.WriteString(meridiem(v.Hour))
	case 'A':
		b.WriteString(strings.ToUpper(meridiem(v.Hour)))
	case 'g':
		b.WriteString(strconv.Itoa(hour12(v.Hour)))
	case 'G':
		b.WriteString(strconv.Itoa(v.Hour))
	case 'h':
		pad2(b, hour12(v.Hour))
	case 'H':
		pad2(b, v.Hour)
	case 'i':
		pad2(b, v.Minute)
	case 's':
		pad2(b, v.Second)
	case 'u':
		fmt.Fprintf(b, "%06d", v.Micros)
	case 'v':
		fmt.Fprintf(b, "%03d", v.Micros/1000)

	// Zone
	case 'e':
		b.WriteString(v.Zone)
	case 'I':
		b.WriteString(boolDigit(v.DST))
	case 'O':
		b.WriteString(formatOffset(v.Offset, ""))
	case 'P':
		b.WriteString(formatOffset(v.Offset, ":"))
	case 'p':
		if v.Offset == 0 {
			b.WriteByte('Z')
		} else {
			b.WriteString(formatOffset(v.Offset, ":"))
		}
	case 'T':
		b.WriteString(v.Abbrev)
	case 'Z':
		b.WriteString(strconv.Itoa(int(v.Offset)))

	// Full date/time
	case 'c':
		b.WriteString(v.mustFormat(`Y-m-d\TH:i:sP`))
	case 'r':
		b.WriteString(v.mustFormat(`D, d M Y H:i:s O`))
	case 'U':
		b.WriteString(strconv.FormatInt(v.Unix, 10))

	default:
		return false
	}
	return true
}

func (v Value) weekday() int {
	return calendar.DayOfWeek(v.Year, v.Month, v.Day)
}

func pad2(b *strings.Builder, n int) {
	if n < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(n))
}

// writeYear writes at least four digits, with a leading '-' for years
// before year 0.
func writeYear(b *strings.Builder, year int) {
	if year < 0 {
		fmt.Fprintf(b, "-%04d", -year)
		return
	}
	fmt.Fprintf(b, "%04d", year)
}

func boolDigit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func meridiem(hour int) string {
	if hour < 12 {
		return "am"
	}
	return "pm"
}

func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// formatOffset renders seconds east of UTC as ±HHMM, separating hours and
// minutes with sep. Seconds are truncated.
func formatOffset(offset int32, sep string) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d%s%02d", sign, offset/3600, sep, offset%3600/60)
}

// isoWeekday maps 0=Sunday..6=Saturday to 1=Monday..7=Sunday.
func isoWeekday(wd int) int {
	if wd == 0 {
		return 7
	}
	return wd
}

// isoWeek returns the ISO 8601 week-numbering year and week of the date.
// A week belongs to the year that contains its Thursday.
func isoWeek(year, month, day int) (int, int) {
	days := calendar.DaysFromCivil(year, month, day)
	thursday := days - int64(isoWeekday(calendar.Weekday(days))) + 4
	y, m, d := calendar.CivilFromDays(thursday)
	return y, calendar.DayOfYear(y, m, d)/7 + 1
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

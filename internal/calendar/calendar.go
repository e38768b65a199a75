// Package calendar implements proleptic Gregorian calendar arithmetic on
// seconds and days relative to the Unix epoch. It does not depend on
// time.Location: offsets are applied by callers.
package calendar

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	// absoluteZeroYear is a year far enough in the past that every
	// representable date lies after it. Taken from the time package.
	absoluteZeroYear = -292277022399
)

// unixToAbsoluteDays is the number of days from the absolute zero year to
// 1970-01-01.
var unixToAbsoluteDays = daysSinceAbsoluteZero(1970)

var daysBeforeMonth = [...]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DateTime is a civil date and wall-clock time without a zone.
type DateTime struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int
	Minute int
	Second int
}

// DaysFromCivil returns the number of days from 1970-01-01 to the given date.
// Month must be in [1, 12]; day may be any positive value and overflows into
// following months.
func DaysFromCivil(year, month, day int) int64 {
	d := int64(daysSinceAbsoluteZero(year)-unixToAbsoluteDays) + daysBeforeMonth[month-1] + int64(day-1)
	if month > 2 && IsLeapYear(year) {
		d++
	}
	return d
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (year, month, day int) {
	// Shift the epoch to 0000-03-01 so that leap days fall at the end of
	// the 400-year era.
	z := days + 719468
	era := FloorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// FromUnix splits a Unix timestamp into civil fields.
func FromUnix(sec int64) DateTime {
	days := FloorDiv(sec, SecondsPerDay)
	rem := int(sec - days*SecondsPerDay)
	y, m, d := CivilFromDays(days)
	return DateTime{
		Year:   y,
		Month:  m,
		Day:    d,
		Hour:   rem / SecondsPerHour,
		Minute: rem % SecondsPerHour / SecondsPerMinute,
		Second: rem % SecondsPerMinute,
	}
}

// Unix converts civil fields read as UTC to a Unix timestamp. It ignores
// leap seconds but respects leap years.
func (dt DateTime) Unix() int64 {
	days := DaysFromCivil(dt.Year, dt.Month, dt.Day)
	return days*SecondsPerDay + int64(dt.Hour)*SecondsPerHour + int64(dt.Minute)*SecondsPerMinute + int64(dt.Second)
}

// Weekday returns the day of the week for the date at the given number of
// days since the epoch, where 0=Sunday, 1=Monday, ..., 6=Saturday.
func Weekday(days int64) int {
	// 1970-01-01 was a Thursday.
	return int(FloorMod(days+4, 7))
}

// DayOfYear returns the zero-based ordinal day of the date within its year.
func DayOfYear(year, month, day int) int {
	n := int(daysBeforeMonth[month-1]) + day - 1
	if month > 2 && IsLeapYear(year) {
		n++
	}
	return n
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is the remainder matching FloorDiv. The result has the sign of b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}

// daysSinceAbsoluteZero takes a year and returns the number of days from
// the absolute zero year to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
func daysSinceAbsoluteZero(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	d += 365 * y

	return d
}

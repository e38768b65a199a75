package civil

import (
	"fmt"
	"math"

	"github.com/ngrash/go-civil/internal/calendar"
)

// plus moves i by sec seconds and micros microseconds. micros is within
// (-1e6, 1e6).
func (i *Instant) plus(sec, micros int64) *Instant {
	if sec == 0 && micros == 0 {
		return i
	}
	total := int64(i.micros) + micros
	sec = add(sec, calendar.FloorDiv(total, microsPerSecond))
	return &Instant{
		sec:    add(i.sec, sec),
		micros: int32(calendar.FloorMod(total, microsPerSecond)),
		zone:   i.zone,
	}
}

// split breaks n units of 1/perSecond seconds into whole seconds and the
// remaining microseconds.
func split(n, perSecond int64) (sec, micros int64) {
	return calendar.FloorDiv(n, perSecond), calendar.FloorMod(n, perSecond) * (microsPerSecond / perSecond)
}

// atLocal returns the instant at wall time dt in the zone of i, keeping
// the microseconds. Wall times skipped by a transition move forward.
func (i *Instant) atLocal(dt calendar.DateTime) *Instant {
	sec, _ := resolve(i.Zone(), dt)
	return &Instant{sec: sec, micros: i.micros, zone: i.zone}
}

// PlusMicroseconds returns i moved forward by n microseconds.
func (i *Instant) PlusMicroseconds(n int64) *Instant {
	return i.plus(split(n, microsPerSecond))
}

// MinusMicroseconds returns i moved back by n microseconds.
func (i *Instant) MinusMicroseconds(n int64) *Instant {
	sec, micros := split(n, microsPerSecond)
	return i.plus(-sec, -micros)
}

// PlusMilliseconds returns i moved forward by n milliseconds.
func (i *Instant) PlusMilliseconds(n int64) *Instant {
	return i.plus(split(n, millisPerSecond))
}

// MinusMilliseconds returns i moved back by n milliseconds.
func (i *Instant) MinusMilliseconds(n int64) *Instant {
	sec, micros := split(n, millisPerSecond)
	return i.plus(-sec, -micros)
}

// PlusSeconds returns i moved forward by n seconds.
func (i *Instant) PlusSeconds(n int64) *Instant {
	return i.plus(n, 0)
}

// MinusSeconds returns i moved back by n seconds.
func (i *Instant) MinusSeconds(n int64) *Instant {
	return i.plus(neg(n), 0)
}

// PlusMinutes returns i moved forward by n minutes.
func (i *Instant) PlusMinutes(n int64) *Instant {
	return i.plus(mul(n, calendar.SecondsPerMinute), 0)
}

// MinusMinutes returns i moved back by n minutes.
func (i *Instant) MinusMinutes(n int64) *Instant {
	return i.plus(neg(mul(n, calendar.SecondsPerMinute)), 0)
}

// PlusHours returns i moved forward by n hours. Across a daylight saving
// transition the wall clock moves by more or less than n hours.
func (i *Instant) PlusHours(n int64) *Instant {
	return i.plus(mul(n, calendar.SecondsPerHour), 0)
}

// MinusHours returns i moved back by n hours.
func (i *Instant) MinusHours(n int64) *Instant {
	return i.plus(neg(mul(n, calendar.SecondsPerHour)), 0)
}

// PlusDays returns i with the date moved forward by n days and the wall
// clock unchanged.
func (i *Instant) PlusDays(n int64) *Instant {
	if n == 0 {
		return i
	}
	dt := i.local()
	dt.Year, dt.Month, dt.Day = calendar.CivilFromDays(checkDays(add(calendar.DaysFromCivil(dt.Year, dt.Month, dt.Day), n)))
	return i.atLocal(dt)
}

// MinusDays returns i with the date moved back by n days.
func (i *Instant) MinusDays(n int64) *Instant {
	return i.PlusDays(neg(n))
}

// PlusMonths returns i with the date moved forward by n months and the
// wall clock unchanged. The day is clamped to the length of the target
// month, so January 31 plus one month is the last day of February.
func (i *Instant) PlusMonths(n int64) *Instant {
	if n == 0 {
		return i
	}
	dt := i.local()
	months := add(int64(dt.Year)*12+int64(dt.Month-1), n)
	dt.Year = int(checkYear(calendar.FloorDiv(months, 12)))
	dt.Month = int(calendar.FloorMod(months, 12)) + 1
	dt.Day = min(dt.Day, calendar.DaysInMonth(dt.Year, dt.Month))
	return i.atLocal(dt)
}

// MinusMonths returns i with the date moved back by n months.
func (i *Instant) MinusMonths(n int64) *Instant {
	return i.PlusMonths(neg(n))
}

// PlusYears returns i with the date moved forward by n years. February 29
// becomes February 28 in common years.
func (i *Instant) PlusYears(n int64) *Instant {
	return i.PlusMonths(mul(n, 12))
}

// MinusYears returns i with the date moved back by n years.
func (i *Instant) MinusYears(n int64) *Instant {
	return i.PlusMonths(neg(mul(n, 12)))
}

// The day and year bounds keep the wall time of a result, and the Unix
// time derived from it, within int64 seconds.
const (
	minDays = math.MinInt64/calendar.SecondsPerDay + 2
	maxDays = math.MaxInt64/calendar.SecondsPerDay - 2
	maxYear = maxDays / 366
)

func overflow(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format+" overflows the instant range", append([]any{ErrRange}, args...)...))
}

func add(a, b int64) int64 {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		overflow("%d + %d", a, b)
	}
	return s
}

func mul(n, unit int64) int64 {
	if n > math.MaxInt64/unit || n < math.MinInt64/unit {
		overflow("%d * %d", n, unit)
	}
	return n * unit
}

func neg(n int64) int64 {
	if n == math.MinInt64 {
		overflow("-(%d)", n)
	}
	return -n
}

func checkDays(days int64) int64 {
	if days < minDays || days > maxDays {
		overflow("day %d", days)
	}
	return days
}

func checkYear(year int64) int64 {
	if year < -maxYear || year > maxYear {
		overflow("year %d", year)
	}
	return year
}

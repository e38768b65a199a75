package civil

import (
	"fmt"

	"github.com/ngrash/go-civil/internal/check"
	"github.com/ngrash/go-civil/tz"
)

// WithDate returns i on the given date with the wall clock unchanged. It
// fails with ErrRange for dates that do not exist. A wall time skipped by
// a daylight saving transition on the new date moves forward.
func (i *Instant) WithDate(year, month, day int) (*Instant, error) {
	if err := check.Date(year, month, day); err != nil {
		return nil, err
	}
	dt := i.local()
	if dt.Year == year && dt.Month == month && dt.Day == day {
		return i, nil
	}
	dt.Year, dt.Month, dt.Day = year, month, day
	return i.atLocal(dt), nil
}

// WithYear returns i in the given year. February 29 becomes February 28 in
// common years.
func (i *Instant) WithYear(year int) *Instant {
	return i.PlusYears(int64(year - i.Year()))
}

// WithMonthOfYear returns i in the given month of the same year. The day is
// clamped to the length of the month. It fails with ErrRange unless month
// is within [1, 12].
func (i *Instant) WithMonthOfYear(month int) (*Instant, error) {
	if err := check.Range(month, 1, 12, "month"); err != nil {
		return nil, err
	}
	return i.PlusMonths(int64(month - i.MonthOfYear())), nil
}

// WithDayOfMonth returns i on the given day of the same month. It fails
// with ErrRange if the month has no such day.
func (i *Instant) WithDayOfMonth(day int) (*Instant, error) {
	dt := i.local()
	if err := check.Date(dt.Year, dt.Month, day); err != nil {
		return nil, err
	}
	return i.PlusDays(int64(day - dt.Day)), nil
}

// WithTime returns i on the same date at the given wall time. It fails
// with ErrRange for out-of-range fields and with ErrInvalidInstant if the
// wall time does not exist on that date. The offset of i is kept when the
// new wall time occurs under it, so an instant in the repeated hour of a
// daylight saving transition stays on its side of the transition.
func (i *Instant) WithTime(hour, minute, second, micros int) (*Instant, error) {
	if err := check.Time(hour, minute, second, micros); err != nil {
		return nil, err
	}
	dt := i.local()
	if dt.Hour == hour && dt.Minute == minute && dt.Second == second && int(i.micros) == micros {
		return i, nil
	}
	dt.Hour, dt.Minute, dt.Second = hour, minute, second
	sec, exact := resolveNear(i.Zone(), dt, i.sec)
	if !exact {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d does not exist in %s",
			ErrInvalidInstant, dt.Year, dt.Month, dt.Day, hour, minute, second, i.Zone())
	}
	return &Instant{sec: sec, micros: int32(micros), zone: i.zone}, nil
}

// WithHourOfDay returns i with the hour replaced. See WithTime.
func (i *Instant) WithHourOfDay(hour int) (*Instant, error) {
	if err := check.Range(hour, 0, 23, "hour"); err != nil {
		return nil, err
	}
	dt := i.local()
	return i.WithTime(hour, dt.Minute, dt.Second, int(i.micros))
}

// WithMinuteOfHour returns i with the minute replaced. See WithTime.
func (i *Instant) WithMinuteOfHour(minute int) (*Instant, error) {
	if err := check.Range(minute, 0, 59, "minute"); err != nil {
		return nil, err
	}
	dt := i.local()
	return i.WithTime(dt.Hour, minute, dt.Second, int(i.micros))
}

// WithSecondOfMinute returns i with the second replaced. See WithTime.
func (i *Instant) WithSecondOfMinute(second int) (*Instant, error) {
	if err := check.Range(second, 0, 59, "second"); err != nil {
		return nil, err
	}
	dt := i.local()
	return i.WithTime(dt.Hour, dt.Minute, second, int(i.micros))
}

// WithMicrosOfSecond returns i with the microseconds replaced. The second
// is unchanged.
func (i *Instant) WithMicrosOfSecond(micros int) (*Instant, error) {
	if err := check.Range(micros, 0, microsPerSecond-1, "micros"); err != nil {
		return nil, err
	}
	if int(i.micros) == micros {
		return i, nil
	}
	return &Instant{sec: i.sec, micros: int32(micros), zone: i.zone}, nil
}

// WithTimeZone returns the same instant viewed in zone. A nil zone means
// UTC.
func (i *Instant) WithTimeZone(zone *tz.TimeZone) *Instant {
	zone = orUTC(zone)
	if i.Zone().Equal(zone) {
		return i
	}
	return &Instant{sec: i.sec, micros: i.micros, zone: zone}
}

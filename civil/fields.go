package civil

import (
	"time"

	"github.com/ngrash/go-civil/internal/calendar"
	"github.com/ngrash/go-civil/tz"
)

// local returns the wall-clock date and time of i in its zone.
func (i *Instant) local() calendar.DateTime {
	return calendar.FromUnix(i.sec + int64(i.Zone().UTCOffset(i.sec)))
}

// resolve returns the Unix time at which the wall clock in zone shows dt.
//
// Offsets are sampled a day before and a day after dt, and each is tried in
// turn. When both fit, the wall time occurs twice and the earlier instant,
// under the offset before the transition, wins. When neither fits, the wall
// time falls into a gap; the result then reads dt under the offset before
// the gap, which lands after the gap, and exact is false.
func resolve(zone *tz.TimeZone, dt calendar.DateTime) (sec int64, exact bool) {
	local := dt.Unix()
	before := int64(zone.UTCOffset(local - calendar.SecondsPerDay))
	if c := local - before; int64(zone.UTCOffset(c)) == before {
		return c, true
	}
	after := int64(zone.UTCOffset(local + calendar.SecondsPerDay))
	if c := local - after; int64(zone.UTCOffset(c)) == after {
		return c, true
	}
	return local - before, false
}

// resolveNear is resolve, preferring the offset in effect at sec.
func resolveNear(zone *tz.TimeZone, dt calendar.DateTime, sec int64) (int64, bool) {
	off := int64(zone.UTCOffset(sec))
	if c := dt.Unix() - off; int64(zone.UTCOffset(c)) == off {
		return c, true
	}
	return resolve(zone, dt)
}

// Zone returns the time zone of i.
func (i *Instant) Zone() *tz.TimeZone {
	return orUTC(i.zone)
}

// Timestamp returns the seconds since the epoch.
func (i *Instant) Timestamp() int64 {
	return i.sec
}

// MillisTimestamp returns the milliseconds since the epoch, truncating
// microseconds.
func (i *Instant) MillisTimestamp() int64 {
	return i.sec*millisPerSecond + int64(i.micros/microsPerMilli)
}

// MicrosOfSecond returns the microsecond within the second, [0, 999999].
func (i *Instant) MicrosOfSecond() int {
	return int(i.micros)
}

// MillisOfSecond returns the millisecond within the second, [0, 999].
func (i *Instant) MillisOfSecond() int {
	return int(i.micros / microsPerMilli)
}

// SecondOfMinute returns the second within the minute, [0, 59].
func (i *Instant) SecondOfMinute() int {
	return i.local().Second
}

// MinuteOfHour returns the minute within the hour, [0, 59].
func (i *Instant) MinuteOfHour() int {
	return i.local().Minute
}

// HourOfDay returns the hour within the day, [0, 23].
func (i *Instant) HourOfDay() int {
	return i.local().Hour
}

// DayOfMonth returns the day of the month, [1, 31].
func (i *Instant) DayOfMonth() int {
	return i.local().Day
}

// MonthOfYear returns the month, [1, 12].
func (i *Instant) MonthOfYear() int {
	return i.local().Month
}

// Year returns the proleptic Gregorian year.
func (i *Instant) Year() int {
	return i.local().Year
}

// DayOfWeek returns the day of the week.
func (i *Instant) DayOfWeek() time.Weekday {
	dt := i.local()
	return time.Weekday(calendar.DayOfWeek(dt.Year, dt.Month, dt.Day))
}

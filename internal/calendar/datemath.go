package calendar

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// DayOfWeek returns the day of the week for a given date,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func DayOfWeek(year, month, day int) int {
	return Weekday(DaysFromCivil(year, month, day))
}

// LastWeekdayOfMonth finds the day of the last instance of a given weekday
// in a specific month and year.
func LastWeekdayOfMonth(year, month, weekday int) int {
	lastDay := DaysInMonth(year, month)
	lastDayWeekday := DayOfWeek(year, month, lastDay)

	// Calculate how many days to subtract from the last day to get the last instance of the given weekday.
	offset := (lastDayWeekday - weekday + 7) % 7
	return lastDay - offset
}

// NthWeekdayOfMonth returns the day of the n-th (1-based) instance of weekday
// in the month. An n of 5 or more selects the last instance, which is how
// POSIX TZ "Mm.w.d" rules read week 5.
func NthWeekdayOfMonth(year, month, n, weekday int) int {
	if n >= 5 {
		return LastWeekdayOfMonth(year, month, weekday)
	}
	first := DayOfWeek(year, month, 1)
	return 1 + (weekday-first+7)%7 + (n-1)*7
}

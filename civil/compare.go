package civil

// Comparisons treat a nil *Instant as the zero value.

// IsInstantEqual reports whether i and other are the same point on the time
// line, regardless of zone.
func (i *Instant) IsInstantEqual(other *Instant) bool {
	i, other = orZero(i), orZero(other)
	return i.sec == other.sec && i.micros == other.micros
}

// Equal reports whether i and other are the same instant in equal zones.
func (i *Instant) Equal(other *Instant) bool {
	return i.IsInstantEqual(other) && orZero(i).Zone().Equal(orZero(other).Zone())
}

// IsAfter reports whether i is strictly later than other.
func (i *Instant) IsAfter(other *Instant) bool {
	i, other = orZero(i), orZero(other)
	return i.sec > other.sec || (i.sec == other.sec && i.micros > other.micros)
}

// IsBefore reports whether i is strictly earlier than other.
func (i *Instant) IsBefore(other *Instant) bool {
	return other.IsAfter(i)
}

// IsAfterNow reports whether i is later than the current time.
func (i *Instant) IsAfterNow() bool {
	return i.IsAfter(Now(nil))
}

// IsBeforeNow reports whether i is earlier than the current time.
func (i *Instant) IsBeforeNow() bool {
	return i.IsBefore(Now(nil))
}

// Compare returns -1, 0 or +1 as i is before, equal to or after other on
// the time line. It orders instants for slices.SortFunc.
func (i *Instant) Compare(other *Instant) int {
	switch {
	case i.IsBefore(other):
		return -1
	case i.IsAfter(other):
		return 1
	default:
		return 0
	}
}

func orZero(i *Instant) *Instant {
	if i == nil {
		return &Instant{}
	}
	return i
}

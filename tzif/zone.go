package tzif

import (
	"fmt"
	"sort"
)

// LocalTimeType is a resolved local time type: the offset east of UTC in
// seconds, the DST flag and the designation.
type LocalTimeType struct {
	Offset int32
	DST    bool
	Abbrev string
}

// Zone answers offset lookups for a compiled TZif file.
type Zone struct {
	times []int64
	types []uint8
	ltt   []LocalTimeType
	rule  *Rule
}

// Compile validates f and prepares its most precise data block and footer
// for lookups.
func Compile(f File) (*Zone, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	_, b := f.Block()
	z := &Zone{
		times: b.TransitionTimes,
		types: b.TransitionTypes,
		ltt:   make([]LocalTimeType, len(b.LocalTimeTypeRecord)),
	}
	for i, r := range b.LocalTimeTypeRecord {
		z.ltt[i] = LocalTimeType{Offset: r.Utoff, DST: r.Dst, Abbrev: b.Designation(r.Idx)}
	}
	if f.Version > V1 && len(f.Footer.TZString) > 0 {
		rule, err := ParseRule(string(f.Footer.TZString))
		if err != nil {
			return nil, fmt.Errorf("compile footer: %w", err)
		}
		z.rule = rule
	}
	return z, nil
}

// Lookup returns the local time type in effect at the given Unix time.
// Times before the first transition use local time type 0. Times at or
// after the last transition use the footer rule when there is one.
func (z *Zone) Lookup(unix int64) LocalTimeType {
	if len(z.times) == 0 {
		if z.rule != nil {
			return z.rule.Lookup(unix)
		}
		return z.ltt[0]
	}
	if unix < z.times[0] {
		return z.ltt[0]
	}
	// Index of the last transition at or before unix.
	i := sort.Search(len(z.times), func(i int) bool { return z.times[i] > unix }) - 1
	if i == len(z.times)-1 && z.rule != nil {
		return z.rule.Lookup(unix)
	}
	return z.ltt[z.types[i]]
}

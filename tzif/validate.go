package tzif

import (
	"errors"
	"fmt"
)

// Validate checks the structural constraints RFC 8536 places on a file and
// reports every violation it finds.
func Validate(f File) error {
	var errs []error
	if f.Version != f.V1Header.Version || (f.Version > V1 && f.V1Header.Version != f.V2Header.Version) {
		errs = append(errs, fmt.Errorf("inconsistent version: file = %v, v1 header = %v, v2 header = %v", f.Version, f.V1Header.Version, f.V2Header.Version))
	}

	errs = append(errs, validateBlock("v1", f.V1Header, f.V1Data)...)

	if f.Version > V1 {
		errs = append(errs, validateBlock("v2", f.V2Header, f.V2Data)...)
		if len(f.Footer.TZString) > 0 {
			if _, err := ParseRule(string(f.Footer.TZString)); err != nil {
				errs = append(errs, fmt.Errorf("invalid footer: %w", err))
			}
		}
	}

	return errors.Join(errs...)
}

func validateBlock(name string, header Header, data DataBlock) []error {
	var err []error

	// Isutcnt
	if header.Isutcnt != 0 && header.Isutcnt != header.Typecnt {
		err = append(err, fmt.Errorf("invalid %s isutcnt (%d): must be 0 or equal to typecnt (%d)", name, header.Isutcnt, header.Typecnt))
	}
	if len(data.UTLocalIndicators) != int(header.Isutcnt) {
		err = append(err, fmt.Errorf("invalid %s isutcnt: header = %d, data = %d", name, header.Isutcnt, len(data.UTLocalIndicators)))
	}

	// Isstdcnt
	if header.Isstdcnt != 0 && header.Isstdcnt != header.Typecnt {
		err = append(err, fmt.Errorf("invalid %s isstdcnt (%d): must be 0 or equal to typecnt (%d)", name, header.Isstdcnt, header.Typecnt))
	}
	if len(data.StandardWallIndicators) != int(header.Isstdcnt) {
		err = append(err, fmt.Errorf("invalid %s isstdcnt: header = %d, data = %d", name, header.Isstdcnt, len(data.StandardWallIndicators)))
	}

	// Leapcnt
	if len(data.LeapSecondRecords) != int(header.Leapcnt) {
		err = append(err, fmt.Errorf("invalid %s leapcnt: header = %d, data = %d", name, header.Leapcnt, len(data.LeapSecondRecords)))
	}

	// Timecnt
	if len(data.TransitionTimes) != int(header.Timecnt) {
		err = append(err, fmt.Errorf("invalid %s timecnt: header = %d, transition times = %d", name, header.Timecnt, len(data.TransitionTimes)))
	}
	if times, types := len(data.TransitionTimes), len(data.TransitionTypes); times != types {
		err = append(err, fmt.Errorf("inconsistent %s transitions: transition times = %d, transition types = %d", name, times, types))
	}
	for i := 1; i < len(data.TransitionTimes); i++ {
		if data.TransitionTimes[i] <= data.TransitionTimes[i-1] {
			err = append(err, fmt.Errorf("invalid %s transition times: not ascending at index %d", name, i))
			break
		}
	}
	for i, typ := range data.TransitionTypes {
		if int(typ) >= len(data.LocalTimeTypeRecord) {
			err = append(err, fmt.Errorf("invalid %s transition type at index %d: %d >= typecnt (%d)", name, i, typ, len(data.LocalTimeTypeRecord)))
			break
		}
	}

	// Typecnt
	if header.Typecnt == 0 {
		err = append(err, fmt.Errorf("invalid %s typecnt: must not be zero", name))
	}
	if len(data.LocalTimeTypeRecord) != int(header.Typecnt) {
		err = append(err, fmt.Errorf("invalid %s typecnt: header = %d, data = %d", name, header.Typecnt, len(data.LocalTimeTypeRecord)))
	}
	for i, r := range data.LocalTimeTypeRecord {
		if int(r.Idx) >= len(data.TimeZoneDesignation) {
			err = append(err, fmt.Errorf("invalid %s local time type %d: designation index %d >= charcnt (%d)", name, i, r.Idx, len(data.TimeZoneDesignation)))
		}
	}

	// Charcnt
	if header.Charcnt == 0 {
		err = append(err, fmt.Errorf("invalid %s charcnt: must not be zero", name))
	}
	if len(data.TimeZoneDesignation) != int(header.Charcnt) {
		err = append(err, fmt.Errorf("invalid %s charcnt: header = %d, data = %d", name, header.Charcnt, len(data.TimeZoneDesignation)))
	}
	if n := len(data.TimeZoneDesignation); n > 0 && data.TimeZoneDesignation[n-1] != 0 {
		err = append(err, fmt.Errorf("invalid %s time zone designations: missing null terminator", name))
	}
	return err
}

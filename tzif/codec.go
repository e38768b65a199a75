package tzif

import (
	"fmt"
	"io"
	"math"
)

const (
	v1TimeSize = 4
	v2TimeSize = 8
)

// File represents a TZif file. For version 1 files only V1Header and V1Data
// are meaningful.
type File struct {
	Version Version

	V1Header Header
	V1Data   DataBlock

	V2Header Header
	V2Data   DataBlock
	Footer   Footer
}

// NewFile builds a file of the given version from a single data block.
// The headers are derived from the block. For version 2+ files the version 1
// block holds the subset of the data that fits into 32-bit times.
func NewFile(v Version, b DataBlock, tz string) File {
	if v == V1 {
		return File{Version: V1, V1Header: b.Header(V1), V1Data: b}
	}
	v1 := narrow(b)
	return File{
		Version:  v,
		V1Header: v1.Header(v),
		V1Data:   v1,
		V2Header: b.Header(v),
		V2Data:   b,
		Footer:   Footer{TZString: []byte(tz)},
	}
}

// Block returns the most precise header and data block of the file.
func (f File) Block() (Header, DataBlock) {
	if f.Version > V1 {
		return f.V2Header, f.V2Data
	}
	return f.V1Header, f.V1Data
}

// Encode writes the given TZif data to the given writer.
// If the version is V1, the V2 fields are not written.
func (f File) Encode(w io.Writer) error {
	if err := f.V1Header.Write(w); err != nil {
		return fmt.Errorf("write v1 header: %w", err)
	}
	if err := f.V1Data.Write(w, v1TimeSize); err != nil {
		return fmt.Errorf("write v1 data: %w", err)
	}
	if f.Version > V1 {
		if err := f.V2Header.Write(w); err != nil {
			return fmt.Errorf("write v2 header: %w", err)
		}
		if err := f.V2Data.Write(w, v2TimeSize); err != nil {
			return fmt.Errorf("write v2 data: %w", err)
		}
		if err := f.Footer.Write(w); err != nil {
			return fmt.Errorf("write v2 footer: %w", err)
		}
	}
	return nil
}

// DecodeFile reads a TZif file from the given reader.
func DecodeFile(r io.Reader) (File, error) {
	var (
		f   File
		err error
	)
	f.V1Header, err = ReadHeader(r)
	if err != nil {
		return f, fmt.Errorf("read v1 header: %w", err)
	}
	f.Version = f.V1Header.Version

	f.V1Data, err = ReadDataBlock(r, f.V1Header, v1TimeSize)
	if err != nil {
		return f, fmt.Errorf("read v1 data block: %w", err)
	}

	if f.Version > V1 {
		f.V2Header, err = ReadHeader(r)
		if err != nil {
			return f, fmt.Errorf("read v2 header: %w", err)
		}
		if f.V2Header.Version < V2 {
			return f, fmt.Errorf("invalid v2 header version: %v", f.V2Header.Version)
		}
		f.V2Data, err = ReadDataBlock(r, f.V2Header, v2TimeSize)
		if err != nil {
			return f, fmt.Errorf("read v2 data block: %w", err)
		}
		f.Footer, err = ReadFooter(r)
		if err != nil {
			return f, fmt.Errorf("read footer: %w", err)
		}
	}

	return f, nil
}

// narrow drops the transitions and leap seconds of b that do not fit into
// 32-bit times. Local time types and designations are kept as they are.
func narrow(b DataBlock) DataBlock {
	out := DataBlock{
		LocalTimeTypeRecord:    b.LocalTimeTypeRecord,
		TimeZoneDesignation:    b.TimeZoneDesignation,
		StandardWallIndicators: b.StandardWallIndicators,
		UTLocalIndicators:      b.UTLocalIndicators,
	}
	for i, t := range b.TransitionTimes {
		if t < math.MinInt32 || t > math.MaxInt32 {
			continue
		}
		out.TransitionTimes = append(out.TransitionTimes, t)
		out.TransitionTypes = append(out.TransitionTypes, b.TransitionTypes[i])
	}
	for _, r := range b.LeapSecondRecords {
		if r.Occur < math.MinInt32 || r.Occur > math.MaxInt32 {
			continue
		}
		out.LeapSecondRecords = append(out.LeapSecondRecords, r)
	}
	return out
}

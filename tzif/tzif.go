// Package tzif reads and writes Time Zone Information Format files as
// described in RFC 8536 (https://datatracker.ietf.org/doc/html/rfc8536) and
// compiles them into zones that answer offset lookups.
package tzif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// All multi-octet integers are big-endian two's complement.
var order = binary.BigEndian

// Version identifies the format version of a TZif file. Version 1 data
// blocks store 32-bit times; version 2 and later add a second block with
// 64-bit times followed by a footer.
type Version byte

const (
	V1 Version = 0x00
	V2 Version = 0x32 // '2'
	V3 Version = 0x33 // '3', allows the TZ string extensions of RFC 8536 3.3.1
	V4 Version = 0x34 // '4', see tzfile(5)
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1 (0x00)"
	case V2:
		return "V2 (0x32)"
	case V3:
		return "V3 (0x33)"
	case V4:
		return "V4 (0x34)"
	default:
		return fmt.Sprintf("<undefined version (%d)>", v)
	}
}

// Magic is the four-octet sequence every TZif header starts with.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// Header precedes each data block. The counts describe the lengths of the
// arrays in the block that follows.
type Header struct {
	Version  Version
	Reserved [15]byte

	Isutcnt  uint32 // UT/local indicators; zero or Typecnt
	Isstdcnt uint32 // standard/wall indicators; zero or Typecnt
	Leapcnt  uint32 // leap-second records
	Timecnt  uint32 // transition times
	Typecnt  uint32 // local time type records; never zero
	Charcnt  uint32 // octets of time zone designations; never zero
}

// Write writes the magic sequence followed by the header.
func (h Header) Write(w io.Writer) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	return binary.Write(w, order, h)
}

// ReadHeader reads and checks the magic sequence and the header after it.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return h, fmt.Errorf("reading magic: %w", err)
	}
	if magic != Magic {
		return h, fmt.Errorf("invalid magic: %v", magic[:])
	}
	err := binary.Read(r, order, &h)
	return h, err
}

// LocalTimeTypeRecord describes a local time type: its offset from UT in
// seconds, whether it is daylight saving time, and the index of its
// designation in the designation octets.
type LocalTimeTypeRecord struct {
	Utoff int32
	Dst   bool
	Idx   uint8
}

// LeapSecondRecord is a leap second occurrence and the total correction
// in effect from then on. Occur is 32 bits wide on disk in version 1 blocks.
type LeapSecondRecord struct {
	Occur int64
	Corr  int32
}

// DataBlock is the body of a TZif file. Transition and leap times are held
// as int64 for both block versions; they are narrowed when a version 1
// block is written.
type DataBlock struct {
	TransitionTimes        []int64
	TransitionTypes        []uint8
	LocalTimeTypeRecord    []LocalTimeTypeRecord
	TimeZoneDesignation    []byte
	LeapSecondRecords      []LeapSecondRecord
	StandardWallIndicators []bool
	UTLocalIndicators      []bool
}

// Header returns a header with counts matching the block.
func (b DataBlock) Header(v Version) Header {
	return Header{
		Version:  v,
		Isutcnt:  uint32(len(b.UTLocalIndicators)),
		Isstdcnt: uint32(len(b.StandardWallIndicators)),
		Leapcnt:  uint32(len(b.LeapSecondRecords)),
		Timecnt:  uint32(len(b.TransitionTimes)),
		Typecnt:  uint32(len(b.LocalTimeTypeRecord)),
		Charcnt:  uint32(len(b.TimeZoneDesignation)),
	}
}

// Designation returns the NUL-terminated designation starting at idx.
func (b DataBlock) Designation(idx uint8) string {
	if int(idx) >= len(b.TimeZoneDesignation) {
		return ""
	}
	s := b.TimeZoneDesignation[idx:]
	if i := bytes.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return string(s)
}

// Write encodes the block with times of the given width (4 or 8 octets).
func (b DataBlock) Write(w io.Writer, timeSize int) error {
	e := encoder{w: w}
	for _, t := range b.TransitionTimes {
		e.time(t, timeSize)
	}
	e.write(b.TransitionTypes)
	for _, r := range b.LocalTimeTypeRecord {
		e.write(r)
	}
	e.write(b.TimeZoneDesignation)
	for _, r := range b.LeapSecondRecords {
		e.time(r.Occur, timeSize)
		e.write(r.Corr)
	}
	e.write(b.StandardWallIndicators)
	e.write(b.UTLocalIndicators)
	return e.err
}

// blockSize returns the number of octets of the block described by h.
func (h Header) blockSize(timeSize int) uint64 {
	ts := uint64(timeSize)
	return uint64(h.Timecnt)*(ts+1) +
		uint64(h.Typecnt)*6 +
		uint64(h.Charcnt) +
		uint64(h.Leapcnt)*(ts+4) +
		uint64(h.Isstdcnt) +
		uint64(h.Isutcnt)
}

// ReadDataBlock reads the block described by h with times of the given width.
// The counts in h are checked against the octets actually available before
// any array is allocated.
func ReadDataBlock(r io.Reader, h Header, timeSize int) (DataBlock, error) {
	var b DataBlock
	size := h.blockSize(timeSize)
	data, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return b, fmt.Errorf("reading data block: %w", err)
	}
	if uint64(len(data)) < size {
		return b, fmt.Errorf("truncated data block: header describes %d octets, got %d", size, len(data))
	}
	d := decoder{r: bytes.NewReader(data)}
	if h.Timecnt > 0 {
		b.TransitionTimes = make([]int64, h.Timecnt)
		for i := range b.TransitionTimes {
			b.TransitionTimes[i] = d.time(timeSize)
		}
		b.TransitionTypes = make([]uint8, h.Timecnt)
		d.read(b.TransitionTypes, "transition types")
	}
	if h.Typecnt > 0 {
		b.LocalTimeTypeRecord = make([]LocalTimeTypeRecord, h.Typecnt)
		d.read(b.LocalTimeTypeRecord, "local time type records")
	}
	if h.Charcnt > 0 {
		b.TimeZoneDesignation = make([]byte, h.Charcnt)
		d.read(b.TimeZoneDesignation, "time zone designations")
	}
	if h.Leapcnt > 0 {
		b.LeapSecondRecords = make([]LeapSecondRecord, h.Leapcnt)
		for i := range b.LeapSecondRecords {
			b.LeapSecondRecords[i].Occur = d.time(timeSize)
			d.read(&b.LeapSecondRecords[i].Corr, "leap second correction")
		}
	}
	if h.Isstdcnt > 0 {
		b.StandardWallIndicators = make([]bool, h.Isstdcnt)
		d.read(b.StandardWallIndicators, "standard/wall indicators")
	}
	if h.Isutcnt > 0 {
		b.UTLocalIndicators = make([]bool, h.Isutcnt)
		d.read(b.UTLocalIndicators, "UT/local indicators")
	}
	return b, d.err
}

// Footer holds the POSIX TZ string that extends the transition data of a
// version 2+ file past its last transition. It may be empty.
type Footer struct {
	TZString []byte
}

const newline = '\n'

// Write writes the TZ string enclosed in newlines.
func (f Footer) Write(w io.Writer) error {
	buf := make([]byte, 0, len(f.TZString)+2)
	buf = append(buf, newline)
	buf = append(buf, f.TZString...)
	buf = append(buf, newline)
	_, err := w.Write(buf)
	return err
}

// ReadFooter reads a newline-enclosed TZ string.
func ReadFooter(r io.Reader) (Footer, error) {
	var f Footer
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return f, fmt.Errorf("reading newline: %w", err)
	}
	if buf[0] != newline {
		return f, fmt.Errorf("expected newline: %v", buf[0])
	}
	var b []byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return f, fmt.Errorf("reading TZ string: %w", err)
		}
		if buf[0] == newline {
			break
		}
		b = append(b, buf[0])
	}
	f.TZString = b
	return f, nil
}

// encoder keeps the first write error so call sites stay linear.
type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(v any) {
	if e.err != nil {
		return
	}
	e.err = binary.Write(e.w, order, v)
}

func (e *encoder) time(t int64, size int) {
	if size == 4 {
		e.write(int32(t))
		return
	}
	e.write(t)
}

// decoder is the reading counterpart of encoder.
type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) read(v any, what string) {
	if d.err != nil {
		return
	}
	if err := binary.Read(d.r, order, v); err != nil {
		d.err = fmt.Errorf("reading %s: %w", what, err)
	}
}

func (d *decoder) time(size int) int64 {
	if size == 4 {
		var t int32
		d.read(&t, "32-bit time")
		return int64(t)
	}
	var t int64
	d.read(&t, "64-bit time")
	return t
}

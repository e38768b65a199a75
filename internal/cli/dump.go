package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/tzif"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	V1 bool
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump <tzif file>",
		Short: "Print the headers, data blocks and footer of a TZif file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.V1, "v1", false, "always print the v1 header and data")

	return cmd
}

func runDump(w io.Writer, path string, opts *DumpOptions) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read file", err)
	}

	r := bytes.NewReader(b)
	f, err := tzif.DecodeFile(r)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to decode", err)
	}

	if f.Version == tzif.V1 || opts.V1 {
		printHeader(w, f.V1Header)
		printBlock(w, tzif.V1, f.V1Data)
	}
	if f.Version > tzif.V1 {
		printHeader(w, f.V2Header)
		printBlock(w, f.V2Header.Version, f.V2Data)
		printFooter(w, f.Footer)
	}
	if r.Len() > 0 {
		fmt.Fprintln(w, "remaining data:", r.Len(), "bytes")
	}

	if err := tzif.Validate(f); err != nil {
		return WrapExitError(ExitFailure, "invalid file", err)
	}
	return nil
}

func printHeader(w io.Writer, h tzif.Header) {
	fmt.Fprintln(w, "Header")
	fmt.Fprintln(w, "  version =", h.Version)
	fmt.Fprintln(w, "  isutcnt =", h.Isutcnt)
	fmt.Fprintln(w, "  isstdcnt =", h.Isstdcnt)
	fmt.Fprintln(w, "  leapcnt =", h.Leapcnt)
	fmt.Fprintln(w, "  timecnt =", h.Timecnt)
	fmt.Fprintln(w, "  typecnt =", h.Typecnt)
	fmt.Fprintln(w, "  charcnt =", h.Charcnt)
	fmt.Fprintln(w)
}

func printBlock(w io.Writer, v tzif.Version, b tzif.DataBlock) {
	fmt.Fprintln(w, "Data block", v)
	fmt.Fprintf(w, "  TransitionTimes (%d) = %v\n", len(b.TransitionTimes), b.TransitionTimes)
	fmt.Fprintf(w, "  TransitionTypes (%d) = %v\n", len(b.TransitionTypes), b.TransitionTypes)
	fmt.Fprintf(w, "  LocalTimeTypeRecord (%d) = %+v\n", len(b.LocalTimeTypeRecord), b.LocalTimeTypeRecord)
	fmt.Fprintf(w, "  TimeZoneDesignation (%d) = %q\n", len(b.TimeZoneDesignation), strings.Split(strings.TrimSuffix(string(b.TimeZoneDesignation), "\x00"), "\x00"))
	fmt.Fprintf(w, "  LeapSecondRecords (%d) = %+v\n", len(b.LeapSecondRecords), b.LeapSecondRecords)
	fmt.Fprintf(w, "  StandardWallIndicators (%d) = %v\n", len(b.StandardWallIndicators), b.StandardWallIndicators)
	fmt.Fprintf(w, "  UTLocalIndicators (%d) = %v\n", len(b.UTLocalIndicators), b.UTLocalIndicators)
	fmt.Fprintln(w)
}

func printFooter(w io.Writer, f tzif.Footer) {
	fmt.Fprintln(w, "Footer")
	fmt.Fprintln(w, "  TZString =", string(f.TZString))
	fmt.Fprintln(w)
}

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/civil"
)

// NewAtCommand creates the at command.
func NewAtCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "at <timestamp>",
		Short: "Show a Unix timestamp as local time in a zone",
		Long: `Show a Unix timestamp as local time in the zone given by --zone.

The first line is the instant formatted with --pattern, followed by the UTC
offset, the DST flag and the abbreviation in effect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := rootOpts.instant(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}
			return printInstant(cmd.OutOrStdout(), i, rootOpts.Pattern)
		},
	}
}

func printInstant(w io.Writer, i *civil.Instant, pattern string) error {
	text, err := i.Format(pattern)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid pattern", err)
	}
	offset := i.Zone().Lookup(i.Timestamp())
	slog.Debug("lookup", "zone", i.Zone().Name(), "timestamp", i.Timestamp(), "offset", offset.Seconds)

	p, err := i.Format("P")
	if err != nil {
		return WrapExitError(ExitFailure, "failed to format offset", err)
	}
	fmt.Fprintln(w, text)
	fmt.Fprintf(w, "  offset = %s (%d)\n", p, offset.Seconds)
	fmt.Fprintln(w, "  dst =", offset.DST)
	fmt.Fprintln(w, "  abbrev =", offset.Abbrev)
	return nil
}

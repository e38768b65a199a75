package cli

import (
	"github.com/spf13/cobra"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <timestamp> --to <zone>",
		Short: "Show a Unix timestamp in two zones",
		Long: `Show a Unix timestamp in the zone given by --zone and then as the same
instant in the zone given by --to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := opts.instant(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}
			to, err := opts.parseZone(opts.To, "to")
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}

			w := cmd.OutOrStdout()
			if err := printInstant(w, i, opts.Pattern); err != nil {
				return err
			}
			return printInstant(w, i.WithTimeZone(to), opts.Pattern)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "target time zone identifier or UTC offset")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

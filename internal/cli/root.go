// Package cli implements the tzinfo command: inspection of TZif files and
// of instants in time zones.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/internal/check"
	"github.com/ngrash/go-civil/tz"
	"github.com/ngrash/go-civil/tzdb"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config   string // path to a YAML config file
	ZoneInfo string // TZif directory; empty means the embedded database
	Zone     string
	Pattern  string
	Verbose  bool
}

const defaultPattern = `Y-m-d\TH:i:s.uP`

// NewRootCommand creates the root command for the tzinfo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "tzinfo",
		Short:         "Inspect TZif files and instants in time zones",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.ZoneInfo, "zoneinfo", "", "read zones from this TZif directory instead of the embedded database")
	cmd.PersistentFlags().StringVar(&opts.Zone, "zone", "UTC", "time zone identifier or UTC offset")
	cmd.PersistentFlags().StringVar(&opts.Pattern, "pattern", defaultPattern, "date() style output pattern")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewAtCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))

	return cmd
}

// setup merges the config file into flags that were not set explicitly
// and configures logging.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if o.Config != "" {
		cfg, err := LoadConfig(o.Config)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		flags := cmd.Flags()
		if cfg.Zone != "" && !flags.Changed("zone") {
			o.Zone = cfg.Zone
		}
		if cfg.Pattern != "" && !flags.Changed("pattern") {
			o.Pattern = cfg.Pattern
		}
		if cfg.ZoneInfo != "" && !flags.Changed("zoneinfo") {
			o.ZoneInfo = cfg.ZoneInfo
		}
		if cfg.Verbose && !flags.Changed("verbose") {
			o.Verbose = true
		}
	}

	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// parseZone resolves name against the configured database.
func (o *RootOptions) parseZone(name, param string) (*tz.TimeZone, error) {
	if o.ZoneInfo == "" {
		return check.TimeZone(name, param)
	}
	zone, err := tz.ParseIn(tzdb.FS(os.DirFS(o.ZoneInfo)), name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", check.ErrInvalidArgument, param, err)
	}
	return zone, nil
}

// instant reads a decimal timestamp argument in the configured zone.
func (o *RootOptions) instant(arg string) (*civil.Instant, error) {
	sec, err := check.Int(arg, "timestamp")
	if err != nil {
		return nil, err
	}
	zone, err := o.parseZone(o.Zone, "zone")
	if err != nil {
		return nil, err
	}
	return civil.FromTimestamp(sec, zone), nil
}

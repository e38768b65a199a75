package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/tzif"
)

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <tzif file A> <tzif file B>",
		Short: "Compare the decoded contents of two TZif files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runDiff(w io.Writer, pathA, pathB string) error {
	a, err := decodePath(pathA)
	if err != nil {
		return err
	}
	b, err := decodePath(pathB)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(a, b, footerAsText); diff != "" {
		fmt.Fprintln(w, "files are different: -A +B")
		fmt.Fprintln(w, diff)
		return NewExitError(ExitFailure, "files are different")
	}
	fmt.Fprintln(w, "files are identical")
	return nil
}

// footerAsText compares TZ strings as text instead of octet by octet.
var footerAsText = cmp.Transformer("TZString", func(f tzif.Footer) string {
	return string(f.TZString)
})

func decodePath(path string) (tzif.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return tzif.File{}, WrapExitError(ExitCommandError, "failed to open file", err)
	}
	defer f.Close()

	data, err := tzif.DecodeFile(f)
	if err != nil {
		return tzif.File{}, WrapExitError(ExitFailure, fmt.Sprintf("failed to decode %s", path), err)
	}
	return data, nil
}

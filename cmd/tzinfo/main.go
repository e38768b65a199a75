// Command tzinfo inspects TZif files and shows instants in time zones.
package main

import (
	"fmt"
	"os"

	"github.com/ngrash/go-civil/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

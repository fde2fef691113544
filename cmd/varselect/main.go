package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	verrors "github.com/opendap-go/varselect/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┬─┐┌─┐┌─┐┬  ┌─┐┌─┐┌┬┐
  ╚╗╔╝├─┤├┬┘└─┐├┤ │  ├┤ │   │
   ╚╝ ┴ ┴┴└─└─┘└─┘┴─┘└─┘└─┘ ┴
`

// errBlocked is returned by check when the guard blocks the submission.
var errBlocked = errors.New("submission blocked")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errBlocked) {
			os.Exit(2)
		}
		verrors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "varselect",
		Short: "Variable selection guard and data file server",
		Long: `varselect serves a directory of data files with browsable indexes
and catalogs, and evaluates the variable selection guard that keeps a
download form from being submitted with no variable selected.

The guard itself runs in the browser (see cmd/varselect-wasm); the check
command runs the same rule against a saved form state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		checkCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

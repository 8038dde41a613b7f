// Package cli implements the gcts command-line interface.
//
// # Commands
//
//   - synth: synthesize an output texture from a source image
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which turns
// on per-patch progress records. Loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "gcts"

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the gcts CLI with os.Args and returns the first command
// error. Cancelling ctx stops a running synthesis between patches.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree; logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "gcts synthesizes textures with graph-cut seams",
		Long:         `gcts grows a large texture from a small sample by repeatedly placing patches of the sample and cutting each one along its cheapest seam with a max-flow/min-cut solver.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSynthCmd())

	return root
}

// Package cli implements the treecanvas command-line interface.
//
// The root command reads tree lines from standard input, draws them with the
// pipeline package and shows the canvas. On a terminal the canvas is shown
// by a small bubbletea program that clears the screen and waits for one key
// press; otherwise the output is written as-is.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and read back with loggerFromContext.
// Logs go to stderr so they never mix with the canvas on stdout.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treecanvas/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "treecanvas"

	// exitPrompt is shown below the canvas while waiting for a key.
	exitPrompt = "Press any key to stop the program."

	// inputHint is shown before reading input on a terminal.
	inputHint = `Enter trees as "x y crown trunk", one per line. An empty line draws them.`
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	In  io.Reader // tree lines
	Out io.Writer // canvas and validation messages
	Err io.Writer // messages that must not mix with machine-readable output
}

// New creates a new CLI instance with a default logger writing to w.
// Input and output default to the process's standard streams.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	opts := defaultDrawOpts()

	root := &cobra.Command{
		Use:   appName,
		Short: "Treecanvas draws ASCII trees on the smallest canvas that fits them",
		Long: `Treecanvas reads trees from standard input, one per line as four integers:

  x y crown trunk

x and y are the 1-based column and row of the tree's top. The crown is a
triangle crown rows tall; the trunk hangs trunk rows below it. Input ends at
an empty line or end of stream, then the canvas is drawn.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	bindDrawFlags(root, opts)

	root.AddCommand(c.completionCommand())

	return root
}

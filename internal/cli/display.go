package cli

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/treecanvas/pkg/pipeline"
)

// show writes the pipeline output. Text output is followed by a blank line;
// on a terminal the screen is cleared first and promptModel waits for a key.
func (c *CLI) show(ctx context.Context, res *pipeline.Result, opts pipeline.Options, noWait bool) error {
	if !opts.IsText() {
		_, err := c.Out.Write(res.Output)
		return err
	}
	if noWait || !isTerminal(c.Out) {
		return writeCanvas(c.Out, res.Output, false)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if isTerminal(c.In) {
		programOpts = append(programOpts, tea.WithInput(c.In))
	} else {
		// Trees came from a pipe; read the key from the controlling terminal.
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	return c.display(ctx, res.Output, programOpts...)
}

// display clears the screen, writes the canvas and then runs promptModel
// until a key is pressed. The canvas bypasses the bubbletea renderer, which
// would clip it to the window; the terminal scrolls instead.
func (c *CLI) display(ctx context.Context, canvas []byte, programOpts ...tea.ProgramOption) error {
	logger := loggerFromContext(ctx)

	if err := writeCanvas(c.Out, canvas, true); err != nil {
		return err
	}

	logger.Debug("awaiting key press")
	programOpts = append(programOpts, tea.WithOutput(c.Out))
	_, err := tea.NewProgram(newPromptModel(), programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	logger.Debug("key pressed, exiting")
	return nil
}

// writeCanvas writes the rendered rows and the blank line that separates
// them from the prompt, optionally clearing the screen first.
func writeCanvas(w io.Writer, canvas []byte, clearScreen bool) error {
	if clearScreen {
		if _, err := io.WriteString(w, ansi.EraseEntireScreen+ansi.CursorHomePosition); err != nil {
			return err
		}
	}
	if _, err := w.Write(canvas); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// promptModel shows the exit prompt until any key is pressed.
type promptModel struct {
	done bool
}

func newPromptModel() promptModel {
	return promptModel{}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m promptModel) View() string {
	return StyleDim.Render(exitPrompt) + "\n"
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var warningStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("214")).
	Bold(true)

// emit renders fn into memory and sends it to path, or to stdout when path
// is empty. Nothing is written if fn fails.
func emit(cmd *cobra.Command, path string, fn func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if path == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if writeFile == nil {
		return errors.New("file output not configured")
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// printWarnings writes each warning to stderr, styled when stderr is a terminal.
func printWarnings(cmd *cobra.Command, warnings []string) {
	w := cmd.ErrOrStderr()
	for _, msg := range warnings {
		fmt.Fprintln(w, formatWarning(w, msg))
	}
}

func formatWarning(w io.Writer, msg string) string {
	text := "warning: " + msg
	if isTerminal(w) {
		return warningStyle.Render(text)
	}
	return text
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

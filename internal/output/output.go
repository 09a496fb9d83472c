// Package output prints styled terminal messages for the daogen CLI.
//
// Styling uses lipgloss; callers only pick the kind of message:
//
//	output.Success("Wrote dao-repo-gen.yaml")
//	output.Field("SchemaName", cfg.SchemaName)
//	output.Error(err.Error())
//
// Verbose messages print only after SetVerbose(true).
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Width(22)

	mu          sync.Mutex
	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetWriter redirects all output to w and returns the previous writer.
func SetWriter(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// SetVerbose enables or disables Verbose messages.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

func writeLine(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, s)
}

// Success prints a completed operation in green.
func Success(msg string) {
	writeLine(successStyle.Render("✔ " + msg))
}

// Error prints a failure in red.
func Error(msg string) {
	writeLine(errorStyle.Render("✖ " + msg))
}

// Warn prints something the user should look at but that did not fail.
func Warn(msg string) {
	writeLine(warnStyle.Render("! " + msg))
}

// Info prints a status line in cyan.
func Info(msg string) {
	writeLine(infoStyle.Render(msg))
}

// Step prints an indented gray sub-item.
func Step(msg string) {
	writeLine(stepStyle.Render("   " + msg))
}

// Field prints an aligned "label value" line. Empty values show as (empty).
func Field(label string, value any) {
	s := fmt.Sprintf("%v", value)
	if s == "" {
		s = stepStyle.Render("(empty)")
	}
	writeLine("  " + labelStyle.Render(label) + " " + s)
}

// Verbose prints a debug line when verbose mode is on.
func Verbose(msg string) {
	mu.Lock()
	enabled := verboseMode
	mu.Unlock()

	if enabled {
		writeLine(stepStyle.Render("· " + msg))
	}
}

package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var (
	mu          sync.Mutex
	writer      io.Writer = os.Stdout
	verboseMode bool
	plainMode   bool
)

// SetVerbose enables or disables Verbose lines.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// IsVerbose reports whether Verbose lines are printed.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verboseMode
}

// SetPlain disables styling and emoji prefixes.
func SetPlain(p bool) {
	mu.Lock()
	defer mu.Unlock()
	plainMode = p
}

// SetWriter redirects output and returns a func restoring the previous writer.
func SetWriter(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := writer
	writer = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		writer = prev
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func emit(style lipgloss.Style, icon, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if plainMode {
		fmt.Fprintln(writer, msg)
		return
	}
	fmt.Fprintln(writer, style.Render(icon+msg))
}

// Success prints a completed-operation line.
//
//	output.Success("Scaffolded my-app")
func Success(msg string) {
	emit(successStyle, "🪺 ", msg)
}

// Error prints a failure that needs the user's attention.
//
//	output.Error("mkdir my-app/infra: path is not a directory")
func Error(msg string) {
	emit(errorStyle, "❌ ", msg)
}

// Warn prints a non-fatal problem, such as a skipped git bootstrap.
func Warn(msg string) {
	emit(warnStyle, "⚠️  ", msg)
}

// Info prints a status line or section header.
func Info(msg string) {
	emit(infoStyle, "ℹ️  ", msg)
}

// Step prints an indented sub-item.
func Step(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if plainMode {
		fmt.Fprintln(writer, "   "+msg)
		return
	}
	fmt.Fprintln(writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug line only when verbose mode is on.
func Verbose(msg string) {
	if !IsVerbose() {
		return
	}
	emit(stepStyle, "🔍 ", msg)
}

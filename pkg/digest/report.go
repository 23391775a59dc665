// File: pkg/digest/report.go
package digest

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives operator-facing progress for a run.
type Reporter interface {
	Start(root string)
	Processed(relPath string)
	Failed(relPath string, err error)
	Complete(count int, output string)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Start(string) {}
func (NopReporter) Processed(string) {}
func (NopReporter) Failed(string, error) {}
func (NopReporter) Complete(int, string) {}

// ConsoleReporter prints one line per event. Colors are only emitted when
// the writer is a terminal.
type ConsoleReporter struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	accent  lipgloss.Style
}

// NewConsoleReporter returns a ConsoleReporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	renderer := lipgloss.NewRenderer(w)
	return &ConsoleReporter{
		w:       w,
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("1")),
		accent:  renderer.NewStyle().Bold(true),
	}
}

func (r *ConsoleReporter) Start(root string) {
	fmt.Fprintln(r.w, r.accent.Render("🚀 Starting codebase digest in: "+root))
}

func (r *ConsoleReporter) Processed(relPath string) {
	fmt.Fprintln(r.w, r.success.Render("✅ Processed: "+relPath))
}

func (r *ConsoleReporter) Failed(relPath string, err error) {
	fmt.Fprintln(r.w, r.failure.Render(fmt.Sprintf("❌ Error reading %s: %v", relPath, err)))
}

func (r *ConsoleReporter) Complete(count int, output string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.accent.Render("✨ Digest Complete!"))
	fmt.Fprintf(r.w, "📄 Scanned %d files.\n", count)
	fmt.Fprintf(r.w, "💾 Output saved to: %s\n", output)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "🚀 Ready to load into Gemini 1.5 Pro!")
}

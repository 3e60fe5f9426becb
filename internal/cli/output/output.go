// Package output provides rendering for CLI commands. Output adapts to
// the environment: styled text on a terminal, markdown when piped, and
// JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. ModeAuto resolves to text on a TTY and
// markdown otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(),
	}
}

// EffectiveMode resolves ModeAuto against the environment.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok {
		if termenv.NewOutput(f).EnvNoColor() || !isTerminal(f) {
			return ModeMarkdown
		}
		return ModeText
	}
	return ModeMarkdown
}

// Out returns the underlying writer for direct table rendering.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Styles returns the lipgloss styles for the current mode.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line of output.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Header writes a section header at the given level, styled in text mode
// and as a markdown heading otherwise.
func (r *Renderer) Header(level int, text string) {
	switch r.EffectiveMode() {
	case ModeText:
		style := r.styles.Header1
		if level > 1 {
			style = r.styles.Header2
		}
		fmt.Fprintln(r.out, style.Render(text))
	default:
		fmt.Fprintf(r.out, "%s %s\n", strings.Repeat("#", level), text)
	}
	fmt.Fprintln(r.out)
}

// JSON marshals v with indentation to the output writer.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Warnf writes a warning line to the error writer.
func (r *Renderer) Warnf(format string, args ...any) {
	fmt.Fprintf(r.errOut, format, args...)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

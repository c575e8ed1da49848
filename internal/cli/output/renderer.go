// Package output provides rendering for CLI diagnostics and summaries.
//
// A Renderer owns the two output streams of a command and adapts styling
// to where they point: styled text on a terminal, plain text when piped,
// JSON when requested. Formatted SQL never goes through the renderer;
// commands write it to stdout directly so it stays pipeable.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode controls how diagnostics and summaries are rendered.
type OutputMode string

// Output modes.
const (
	ModeAuto OutputMode = "auto" // Text, styled only on a TTY
	ModeText OutputMode = "text" // Plain or styled text
	ModeJSON OutputMode = "json" // Machine-readable summaries
)

// Mode parses a mode string, falling back to auto for unknown values.
func Mode(s string) OutputMode {
	switch OutputMode(s) {
	case ModeText:
		return ModeText
	case ModeJSON:
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Renderer writes styled diagnostics to errOut and payload output to out.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether errOut is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, detectTTY(errOut), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use this to pin styling behavior.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}
	if r.styled() {
		r.styles = defaultStyles()
	} else {
		r.styles = plainStyles()
	}
	return r
}

func detectTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// styled reports whether ANSI styling is active.
func (r *Renderer) styled() bool {
	return r.isTTY && r.mode != ModeJSON
}

// IsTTY reports whether the error stream is a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// EffectiveMode resolves ModeAuto to the concrete mode in use.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Styles returns the active style set. Styles render to plain text when
// the renderer is not styled, so callers never branch on TTY state.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the payload output stream.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the diagnostics stream.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Printf writes formatted payload output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Println writes a payload output line.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// JSON writes v to the payload stream as indented JSON.
func (r *Renderer) JSON(v any) error {
	return jsonEncoder(r.out).Encode(v)
}

func jsonEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

// Success writes a success line to the diagnostics stream.
func (r *Renderer) Success(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Success.Render(msg))
}

// Errorf writes an error line to the diagnostics stream.
func (r *Renderer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n",
		r.styles.Error.Render("error:"), fmt.Sprintf(format, args...))
}

// Warningf writes a warning line to the diagnostics stream.
func (r *Renderer) Warningf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n",
		r.styles.Warning.Render("warning:"), fmt.Sprintf(format, args...))
}

// Mutedf writes a secondary line to the diagnostics stream.
func (r *Renderer) Mutedf(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

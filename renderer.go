package askline

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-colorable"
)

// StyleSet holds the ANSI style tokens used by the renderer. Callers may
// inject their own set (or Plain for none); there is no process-wide mutable
// style state.
type StyleSet struct {
	Reset string
	Error string // validation messages
	Hint  string // default-value and yes/no hints
}

// DefaultStyles renders errors in red and hints dimmed.
var DefaultStyles = StyleSet{
	Reset: "\x1b[0m",
	Error: "\x1b[31m",
	Hint:  "\x1b[2m",
}

// Plain disables styling entirely, for dumb terminals and tests.
var Plain = StyleSet{}

// statusWriter returns the interactive status stream. All prompt, echo, and
// error output goes here; the accepted value itself is never written by the
// library. On Windows the stream is wrapped for ANSI color support.
func statusWriter() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStderr()
	}
	return os.Stderr
}

// renderer draws the prompt line and runs the error/retry display protocol.
// The whole widget lives on a single terminal line: every redraw starts with
// carriage return plus clear-to-end, and cursor positioning is done with
// relative motion so the line is rebuilt in place without scrolling.
type renderer struct {
	output io.Writer
	styles StyleSet
}

func newRenderer(output io.Writer, styles StyleSet) *renderer {
	return &renderer{output: output, styles: styles}
}

// renderLine redraws the full prompt line: prefix, dim hint, visible input,
// then repositions the terminal cursor back to the logical cursor column.
func (r *renderer) renderLine(prompt, hint, visible string, cursor int) {
	fmt.Fprint(r.output, "\r\x1b[K")
	fmt.Fprint(r.output, prompt)
	if hint != "" {
		fmt.Fprint(r.output, r.styles.Hint, hint, r.styles.Reset)
	}
	fmt.Fprint(r.output, visible)
	if n := len([]rune(visible)) - cursor; n > 0 {
		fmt.Fprintf(r.output, "\x1b[%dD", n)
	}
}

// showError runs the retry display protocol for one rejected attempt: the
// message appears styled on the line below the prompt, stays up long enough
// to read, then is erased and the cursor returns to the prompt line so the
// next attempt redraws in place. CSI E (next line) is used instead of a
// newline because it clamps at the bottom margin: a validation failure must
// never scroll the terminal. When the prompt already sits on the last row,
// the clamp means the error overwrites the prompt line itself and the
// closing cursor-up lands one row above it; the very next renderLine redraws
// the prompt there, so the session stays usable at the cost of one shifted
// row.
func (r *renderer) showError(message string, pause time.Duration) {
	fmt.Fprint(r.output, "\x1b[E\x1b[K")
	fmt.Fprint(r.output, r.styles.Error, message, r.styles.Reset)
	if pause > 0 {
		time.Sleep(pause)
	}
	fmt.Fprint(r.output, "\r\x1b[K\x1b[1A\r")
}

// finish ends the session's terminal output after an accepted submission.
// If an earlier attempt failed, the line below may still hold a stale error
// message; it is cleared before control returns to the caller.
func (r *renderer) finish(hadError bool) {
	fmt.Fprint(r.output, "\r\n")
	if hadError {
		fmt.Fprint(r.output, "\x1b[K")
	}
}

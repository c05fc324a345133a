package askline

import (
	"strings"
	"unicode"
)

// editResult is the terminal state of one edit-loop invocation.
type editResult struct {
	value       string
	interrupted bool
}

// editor owns the mutable line state for a single attempt. It is rebuilt
// fresh on every retry: a rejected attempt never carries buffer contents
// forward, the buffer is re-seeded from the request each time.
//
// Invariant: 0 <= cursor <= len(buffer) at all times.
type editor struct {
	req    Request
	dec    *decoder
	out    *renderer
	buffer []rune
	cursor int
}

func newEditor(req Request, dec *decoder, out *renderer) *editor {
	e := &editor{req: req, dec: dec, out: out}
	// A default takes precedence over a prefill (see Request docs): the
	// default is shown as a hint and the buffer starts empty, so that an
	// empty Enter accepts it. Only without a default does the prefill seed
	// the editable buffer, cursor at its end.
	if req.DefaultValue == "" && req.PrefillValue != "" {
		e.buffer = []rune(req.PrefillValue)
		e.cursor = len(e.buffer)
	}
	return e
}

// visible returns the display form of the buffer. Password mode substitutes
// a fixed mask glyph per character; the true characters live only in the
// in-memory buffer and are never written anywhere else.
func (e *editor) visible() string {
	if e.req.Mode == ModePassword {
		return strings.Repeat("*", len(e.buffer))
	}
	return string(e.buffer)
}

func (e *editor) render() {
	e.out.renderLine(e.req.Prompt, e.req.hint(), e.visible(), e.cursor)
}

// run drives the edit loop until the line is submitted or interrupted.
//
// Every structural change redraws the visible line in full (clear to the
// right, re-emit, reposition), so insertion or deletion in the middle of the
// buffer never corrupts the trailing characters.
func (e *editor) run() (editResult, error) {
	e.render()
	for {
		ev, err := e.dec.Next()
		if err != nil {
			return editResult{}, err
		}
		switch ev.Kind {
		case KeyEnter:
			if len(e.buffer) == 0 && e.req.DefaultValue != "" {
				return editResult{value: e.req.DefaultValue}, nil
			}
			return editResult{value: string(e.buffer)}, nil
		case KeyInterrupt:
			return editResult{interrupted: true}, nil
		case KeyChar:
			e.insert(ev.Rune)
		case KeyBackspace:
			e.backspace()
		case KeyLeft:
			if e.cursor > 0 {
				e.cursor--
				e.render()
			}
		case KeyRight:
			if e.cursor < len(e.buffer) {
				e.cursor++
				e.render()
			}
		case KeyHome:
			if e.cursor != 0 {
				e.cursor = 0
				e.render()
			}
		case KeyEnd:
			if e.cursor != len(e.buffer) {
				e.cursor = len(e.buffer)
				e.render()
			}
		case KeyIgnored:
			// Lone ESC, truncated sequence, or an unbound control byte.
		}
	}
}

// insert splices r at the cursor. The insert is a no-op when the buffer is
// already at the length limit or the mode's admission filter refuses the
// character; a refused insert changes neither buffer nor cursor.
func (e *editor) insert(r rune) {
	if e.req.MaxLength > 0 && len(e.buffer) >= e.req.MaxLength {
		return
	}
	if !admissible(r, e.req.Mode) {
		return
	}
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
	e.render()
}

func (e *editor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
	e.cursor--
	e.render()
}

// runYesNo is the simplified Yes/No controller. It bypasses the line buffer
// entirely: one key at a time, Y or N (any case) submits immediately, Enter
// accepts a configured default, Ctrl+C interrupts, everything else is
// ignored. The submitted value is always the single uppercase letter.
func runYesNo(req Request, dec *decoder, out *renderer) (editResult, error) {
	out.renderLine(req.Prompt, req.hint(), "", 0)
	def := normalizeYesNo(req.DefaultValue)
	for {
		ev, err := dec.Next()
		if err != nil {
			return editResult{}, err
		}
		switch ev.Kind {
		case KeyInterrupt:
			return editResult{interrupted: true}, nil
		case KeyEnter:
			if def != "" {
				out.renderLine(req.Prompt, req.hint(), def, 1)
				return editResult{value: def}, nil
			}
		case KeyChar:
			u := unicode.ToUpper(ev.Rune)
			if u == 'Y' || u == 'N' {
				out.renderLine(req.Prompt, req.hint(), string(u), 1)
				return editResult{value: string(u)}, nil
			}
		}
	}
}

// normalizeYesNo maps a configured yes/no default to "Y", "N", or "" when
// no usable default is configured.
func normalizeYesNo(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y", "YES":
		return "Y"
	case "N", "NO":
		return "N"
	}
	return ""
}

// Package askline collects a constrained single-line string from a terminal
// operator, with per-mode character admission, post-submission validation,
// cursor editing, default/prefill values, and an in-place error-retry
// protocol.
package askline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Common errors
var (
	// ErrInterrupted is returned when the operator presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrConfig is returned when the request itself is invalid. The check
	// runs before any terminal mode change.
	ErrConfig = errors.New("invalid configuration")
)

// Mode selects the input discipline for a request. It determines three
// independent behaviors: which characters may be typed at all (the admission
// filter), how typed characters echo (password masking), and which semantic
// check runs on submission.
type Mode int

// Input modes.
const (
	ModeText Mode = iota
	ModeNumeric
	ModePassword
	ModeYesNo
	ModeEmail
	ModePhone
	ModeIPv4
	ModeIPv6
)

var modeNames = map[Mode]string{
	ModeText:     "text",
	ModeNumeric:  "numeric",
	ModePassword: "password",
	ModeYesNo:    "yesno",
	ModeEmail:    "email",
	ModePhone:    "phone",
	ModeIPv4:     "ipv4",
	ModeIPv6:     "ipv6",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a mode name (as accepted on a command line) to its Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrConfig, s)
}

// defaultErrorPause is how long a validation message stays visible before
// the prompt is redrawn for the next attempt.
const defaultErrorPause = 1500 * time.Millisecond

// Request describes one input session. The zero value of every optional
// field means "not configured".
//
// DefaultValue and PrefillValue are in practice mutually exclusive: a
// default is displayed as a hint and substituted when the operator submits
// an empty buffer, a prefill seeds the editable buffer. When both are set
// the default takes precedence and the prefill is ignored.
type Request struct {
	Prompt       string
	Mode         Mode
	MinLength    int           // 0 = no lower bound (ignored for ModeYesNo)
	MaxLength    int           // 0 = no upper bound; also caps typed length
	MinValue     *int          // ModeNumeric only
	MaxValue     *int          // ModeNumeric only
	DefaultValue string        // hint, accepted on empty Enter
	PrefillValue string        // seeds the editable buffer
	AllowEmpty   bool          // accept an empty submission unconditionally
	ErrorMessage string        // overrides every validator message when set
	Styles       *StyleSet     // nil = DefaultStyles
	ErrorPause   time.Duration // 0 = defaultErrorPause
}

// Option mutates a Request built by Input.
type Option func(*Request)

// WithLengthBounds sets the character-count bounds; 0 disables a bound.
func WithLengthBounds(minLen, maxLen int) Option {
	return func(r *Request) {
		r.MinLength = minLen
		r.MaxLength = maxLen
	}
}

// WithValueBounds sets the numeric value bounds for ModeNumeric.
func WithValueBounds(minVal, maxVal int) Option {
	return func(r *Request) {
		r.MinValue = &minVal
		r.MaxValue = &maxVal
	}
}

// WithDefault sets the default value, shown as a hint next to the prompt
// and submitted when the operator presses Enter on an empty buffer.
func WithDefault(value string) Option {
	return func(r *Request) { r.DefaultValue = value }
}

// WithPrefill seeds the editable buffer; the cursor starts at its end.
func WithPrefill(value string) Option {
	return func(r *Request) { r.PrefillValue = value }
}

// WithAllowEmpty accepts an empty submission, bypassing all other checks.
func WithAllowEmpty() Option {
	return func(r *Request) { r.AllowEmpty = true }
}

// WithErrorMessage replaces every validation message with a fixed one.
func WithErrorMessage(message string) Option {
	return func(r *Request) { r.ErrorMessage = message }
}

// WithStyles injects the ANSI style tokens used for errors and hints.
func WithStyles(styles StyleSet) Option {
	return func(r *Request) { r.Styles = &styles }
}

// WithErrorPause sets how long a validation message stays on screen.
func WithErrorPause(d time.Duration) Option {
	return func(r *Request) { r.ErrorPause = d }
}

// hint is the dim text rendered right after the prompt.
func (r Request) hint() string {
	if r.Mode == ModeYesNo {
		switch normalizeYesNo(r.DefaultValue) {
		case "Y":
			return "[Y/n] "
		case "N":
			return "[y/N] "
		}
		return "[y/n] "
	}
	if r.DefaultValue != "" && r.Mode != ModePassword {
		return "[" + r.DefaultValue + "] "
	}
	return ""
}

func (r Request) styles() StyleSet {
	if r.Styles != nil {
		return *r.Styles
	}
	return DefaultStyles
}

func (r Request) errorPause() time.Duration {
	if r.ErrorPause > 0 {
		return r.ErrorPause
	}
	return defaultErrorPause
}

// validate rejects malformed requests before any terminal interaction.
func (r Request) validate() error {
	if _, ok := modeNames[r.Mode]; !ok {
		return fmt.Errorf("%w: unknown mode %d", ErrConfig, int(r.Mode))
	}
	if r.MinLength < 0 || r.MaxLength < 0 {
		return fmt.Errorf("%w: negative length bound", ErrConfig)
	}
	if r.MaxLength > 0 && r.MinLength > r.MaxLength {
		return fmt.Errorf("%w: min_length %d exceeds max_length %d", ErrConfig, r.MinLength, r.MaxLength)
	}
	if r.MinValue != nil && r.MaxValue != nil && *r.MinValue > *r.MaxValue {
		return fmt.Errorf("%w: min_value %d exceeds max_value %d", ErrConfig, *r.MinValue, *r.MaxValue)
	}
	if r.Mode == ModeYesNo && r.DefaultValue != "" && normalizeYesNo(r.DefaultValue) == "" {
		return fmt.Errorf("%w: yes/no default must be y or n, got %q", ErrConfig, r.DefaultValue)
	}
	return nil
}

// Input collects one value from the terminal. It is the convenience form of
// Run.
//
// Example:
//
//	age, err := askline.Input("Age: ", askline.ModeNumeric,
//		askline.WithValueBounds(1, 120),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
func Input(prompt string, mode Mode, opts ...Option) (string, error) {
	req := Request{Prompt: prompt, Mode: mode}
	for _, opt := range opts {
		opt(&req)
	}
	return Run(req)
}

// Run collects one value described by the request.
//
// The retry loop acquires the terminal, runs the mode's edit loop, validates
// the submission, and either returns the value or shows the error and
// repeats with a freshly seeded buffer. Ctrl+C unwinds immediately with
// ErrInterrupted and no validation; the terminal settings are restored on
// every exit path. All interactive output goes to the status stream
// (stderr); the returned value is never written by the library.
func Run(req Request) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}
	device, err := newRealTerminal()
	if err != nil {
		// Not a tty at all: the session guard degrades rather than aborting.
		debugLog().Debug().Err(err).Msg("terminal unavailable, degrading")
		return runSession(req, newDegradedTerminal(), statusWriter())
	}
	defer func() {
		if cerr := device.Close(); cerr != nil {
			debugLog().Debug().Err(cerr).Msg("terminal close failed")
		}
	}()
	return runSession(req, device, statusWriter())
}

// runSession is the orchestrator body, split out so tests can drive it with
// a scripted terminal and capture the status stream.
func runSession(req Request, device terminalDevice, status io.Writer) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}
	log := debugLog()
	log.Debug().Stringer("mode", req.Mode).Str("prompt", req.Prompt).Msg("input session start")

	out := newRenderer(status, req.styles())
	dec := &decoder{device: device}
	hadError := false

	for {
		value, interrupted, err := runAttempt(req, device, dec, out)
		if err != nil {
			return "", err
		}
		if interrupted {
			fmt.Fprint(status, "^C\r\n")
			log.Debug().Msg("session interrupted")
			return "", ErrInterrupted
		}
		if req.Mode == ModeYesNo {
			// The yes/no controller only ever produces Y or N; the
			// validator does not apply.
			out.finish(hadError)
			return value, nil
		}
		outcome := Validate(value, req)
		if outcome.OK {
			out.finish(hadError)
			log.Debug().Int("length", len(value)).Msg("input accepted")
			return value, nil
		}
		hadError = true
		message := outcome.Message
		if req.ErrorMessage != "" {
			message = req.ErrorMessage
		}
		log.Debug().Str("reason", outcome.Message).Msg("input rejected, retrying")
		out.showError(message, req.errorPause())
	}
}

// runAttempt runs one terminal-armed edit attempt. The raw-mode settings are
// restored on every way out, including read errors, before the result is
// reported.
func runAttempt(req Request, device terminalDevice, dec *decoder, out *renderer) (value string, interrupted bool, err error) {
	if rawErr := device.SetRaw(); rawErr != nil {
		// Degrade: keep going without raw mode rather than failing the
		// request on an unsupported terminal.
		debugLog().Debug().Err(rawErr).Msg("raw mode unavailable")
	}
	restored := false
	defer func() {
		if !restored {
			if rerr := device.Restore(); rerr != nil && err == nil {
				err = fmt.Errorf("restore terminal: %w", rerr)
			}
		}
	}()

	var res editResult
	if req.Mode == ModeYesNo {
		res, err = runYesNo(req, dec, out)
	} else {
		res, err = newEditor(req, dec, out).run()
	}
	if err != nil {
		return "", false, err
	}

	restored = true
	if rerr := device.Restore(); rerr != nil {
		return "", false, fmt.Errorf("restore terminal: %w", rerr)
	}
	return res.value, res.interrupted, nil
}

// degradedTerminal serves requests when no tty can be opened at all (stdin
// is a pipe or closed). Raw mode and restoration are no-ops and runes come
// straight off stdin, so scripted and piped input still works.
type degradedTerminal struct {
	in *bufio.Reader
}

func newDegradedTerminal() *degradedTerminal {
	return &degradedTerminal{in: bufio.NewReader(os.Stdin)}
}

func (*degradedTerminal) SetRaw() error  { return nil }
func (*degradedTerminal) Restore() error { return nil }
func (*degradedTerminal) Close() error   { return nil }

func (d *degradedTerminal) ReadRune() (rune, error) {
	r, _, err := d.in.ReadRune()
	return r, err
}

// ReadRuneTimeout reports a timeout once the stream is exhausted, but it does
// not honor the duration: the Peek blocks until at least one byte arrives
// while a writer still holds the pipe open. Piped escape sequences arrive
// back to back, so the disambiguation delay is irrelevant on this path.
func (d *degradedTerminal) ReadRuneTimeout(time.Duration) (rune, bool, error) {
	if _, err := d.in.Peek(1); err != nil {
		return 0, false, nil
	}
	r, err := d.ReadRune()
	return r, err == nil, err
}

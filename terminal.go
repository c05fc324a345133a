package askline

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalDevice abstracts terminal operations for testability and cross-platform support.
//
// The interface covers exactly what the input session needs: switching the
// terminal into raw (unbuffered, no-echo) mode, restoring the captured
// settings, reading one rune at a time, and reading with a deadline so a lone
// ESC press can be told apart from the lead byte of an arrow-key sequence.
//
// Implementations:
//   - realTerminal: go-tty reads plus golang.org/x/term raw-mode management
//   - mockTerminal: scripted input for deterministic tests
type terminalDevice interface {
	SetRaw() error                                       // Enter raw mode for immediate key processing
	Restore() error                                      // Restore the captured terminal settings
	ReadRune() (rune, error)                             // Blocking read of a single rune
	ReadRuneTimeout(d time.Duration) (rune, bool, error) // Read with deadline; ok=false on timeout
	Close() error                                        // Release the tty handle
}

// runeResult carries one completed read from the background reader.
type runeResult struct {
	r   rune
	err error
}

// realTerminal implements terminalDevice on a live tty.
//
// Raw-mode handling follows the capture/restore pattern: SetRaw snapshots the
// current term.State before calling MakeRaw, and Restore puts that snapshot
// back. When stdin is not a terminal both calls degrade to no-ops, so the
// widget keeps working (best effort, no cursor editing guarantees) instead of
// failing the whole input request.
//
// Timed reads are served by a single in-flight reader goroutine. go-tty has
// no read deadline, so ReadRuneTimeout starts a read and waits on a channel;
// if the deadline passes first, the read stays in flight and its result is
// delivered to whichever read call comes next. At most one reader goroutine
// exists at a time, so runes are never reordered or dropped.
type realTerminal struct {
	tty           *tty.TTY
	stdinFd       int
	originalState *term.State // nil when raw mode is not active
	closed        bool        // double-close guard (panics on Windows otherwise)
	reads         chan runeResult
	inFlight      bool // a reader goroutine is running and unconsumed
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
		reads:   make(chan runeResult, 1),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Non-TTY stdin (pipe, CI): leave the line discipline alone.
	if !isatty.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	if _, err := term.MakeRaw(t.stdinFd); err != nil {
		return err
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	// Reset so SetRaw captures a fresh baseline next time.
	t.originalState = nil
	return err
}

// startRead launches the background reader unless one is already pending.
func (t *realTerminal) startRead() {
	if t.inFlight {
		return
	}
	t.inFlight = true
	go func() {
		r, err := t.tty.ReadRune()
		t.reads <- runeResult{r: r, err: err}
	}()
}

func (t *realTerminal) ReadRune() (rune, error) {
	t.startRead()
	res := <-t.reads
	t.inFlight = false
	return res.r, res.err
}

func (t *realTerminal) ReadRuneTimeout(d time.Duration) (rune, bool, error) {
	t.startRead()
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case res := <-t.reads:
		t.inFlight = false
		return res.r, true, res.err
	case <-timer.C:
		// The read stays in flight; the next read call consumes it.
		return 0, false, nil
	}
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}

package askline

import (
	"io"
	"time"
)

// timeoutMark is a scripted-input sentinel for mockTerminal: when a timed
// read encounters it, the read reports a timeout instead of delivering a
// rune. Used to simulate a lone ESC press in tests.
const timeoutMark = '\x00'

// mockTerminal implements terminalDevice with a pre-scripted input sequence.
//
// It gives tests deterministic, side-effect-free terminal behavior: raw mode
// is tracked but never touches a real tty, blocking reads walk the script,
// and timed reads honor timeoutMark so escape-sequence disambiguation can be
// exercised without real clocks. Safe for CI and headless environments.
type mockTerminal struct {
	input    []rune
	inputPos int
	rawMode  bool // raw-mode state for test assertions
	restores int  // number of Restore calls, for cleanup assertions
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{input: []rune(input)}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restores++
	return nil
}

func (m *mockTerminal) ReadRune() (rune, error) {
	if m.inputPos >= len(m.input) {
		return 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, nil
}

func (m *mockTerminal) ReadRuneTimeout(time.Duration) (rune, bool, error) {
	// Script exhausted: behave like a keyboard with no further bytes,
	// which is a timeout, not an error.
	if m.inputPos >= len(m.input) {
		return 0, false, nil
	}
	if m.input[m.inputPos] == timeoutMark {
		m.inputPos++
		return 0, false, nil
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, true, nil
}

func (m *mockTerminal) Close() error {
	return nil
}

package askline

import (
	"time"
	"unicode"
)

// KeyKind identifies a decoded key event.
type KeyKind int

// Key event kinds produced by the decoder.
const (
	KeyIgnored KeyKind = iota // unrecognized or incomplete input
	KeyChar
	KeyBackspace
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyInterrupt
)

// KeyEvent is one decoded keyboard event. Rune is meaningful only for
// KeyChar. Events are produced fresh per read and consumed immediately by
// the edit loop; they are never stored.
type KeyEvent struct {
	Kind KeyKind
	Rune rune
}

// escapeTimeout bounds the wait for the remainder of an escape sequence.
// A lone ESC press delivers a single byte; an arrow or Home/End key delivers
// ESC '[' X back to back, so a short deadline is enough to tell them apart
// without blocking indefinitely.
const escapeTimeout = 100 * time.Millisecond

// decoder turns raw terminal reads into discrete key events.
type decoder struct {
	device terminalDevice
}

// Next blocks for the next input unit and decodes it.
//
// Mapping: CR/LF -> Enter, 0x7F/0x08 -> Backspace, 0x03 (Ctrl+C) ->
// Interrupt, ESC starts a sequence read, any other graphic rune -> Char.
// Control bytes with no binding decode to an ignored event so the edit loop
// stays total.
func (d *decoder) Next() (KeyEvent, error) {
	r, err := d.device.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}
	switch r {
	case '\r', '\n':
		return KeyEvent{Kind: KeyEnter}, nil
	case '\x7f', '\b':
		return KeyEvent{Kind: KeyBackspace}, nil
	case '\x03':
		return KeyEvent{Kind: KeyInterrupt}, nil
	case '\x1b':
		return d.decodeEscape()
	}
	if unicode.IsGraphic(r) {
		return KeyEvent{Kind: KeyChar, Rune: r}, nil
	}
	return KeyEvent{Kind: KeyIgnored}, nil
}

// decodeEscape reads the two bytes that follow ESC in a CSI navigation
// sequence. A timeout at either position means the ESC was pressed alone (or
// the sequence was truncated) and decodes to an ignored event. Both bytes
// are always consumed when present, even for a non-CSI lead byte, so the
// trailer of an unrecognized sequence (SS3 forms like ESC O H) never reaches
// the buffer as a literal character.
func (d *decoder) decodeEscape() (KeyEvent, error) {
	first, ok, err := d.device.ReadRuneTimeout(escapeTimeout)
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok {
		return KeyEvent{Kind: KeyIgnored}, nil
	}
	second, ok, err := d.device.ReadRuneTimeout(escapeTimeout)
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok || first != '[' {
		return KeyEvent{Kind: KeyIgnored}, nil
	}
	switch second {
	case 'D':
		return KeyEvent{Kind: KeyLeft}, nil
	case 'C':
		return KeyEvent{Kind: KeyRight}, nil
	case 'H':
		return KeyEvent{Kind: KeyHome}, nil
	case 'F':
		return KeyEvent{Kind: KeyEnd}, nil
	}
	return KeyEvent{Kind: KeyIgnored}, nil
}

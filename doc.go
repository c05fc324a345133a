// Package askline provides an interactive, single-line text-entry widget
// for terminal programs.
//
// It collects a constrained string from a human operator: each request
// names a mode (text, numeric, password, yes/no, email, phone, IPv4, IPv6)
// that decides which characters can be typed at all, how they echo, and
// which semantic check runs when the line is submitted. Rejected input is
// reported on the spot and the prompt is redrawn in place for another
// attempt; the terminal never scrolls because of a validation failure.
//
// Quick start:
//
//	name, err := askline.Input("Name: ", askline.ModeText,
//		askline.WithLengthBounds(1, 40),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("hello,", name)
//
// Numeric input with value bounds:
//
//	age, err := askline.Input("Age: ", askline.ModeNumeric,
//		askline.WithValueBounds(1, 120),
//	)
//
// Yes/no confirmation with a default accepted on Enter:
//
//	ok, err := askline.Input("Proceed? ", askline.ModeYesNo,
//		askline.WithDefault("y"),
//	)
//	// ok is always "Y" or "N"
//
// Editing:
//
// The widget runs the terminal in raw mode for the duration of one call and
// restores the captured settings on every exit path. While editing, the
// operator has non-destructive cursor movement (left/right arrows, Home,
// End), backspace, and insertion at the cursor; characters outside the
// mode's admissible set are silently refused before they ever reach the
// buffer. Password input echoes a fixed mask glyph and the true characters
// exist only in the in-memory buffer.
//
// Defaults and prefills:
//
// A default value (WithDefault) renders as a dim hint and is submitted when
// the operator presses Enter on an empty buffer. A prefill (WithPrefill)
// instead seeds the editable buffer with the cursor at its end. If both are
// configured the default takes precedence and the prefill is ignored.
//
// Errors:
//
//   - askline.ErrInterrupted: the operator pressed Ctrl+C; terminal
//     settings were restored first and no value was produced.
//   - askline.ErrConfig: the request was malformed (unknown mode,
//     inverted bounds); reported before any terminal mode change.
//
// Validation failures are never returned as errors; they are handled by
// the in-place retry protocol.
//
// When standard input is not a terminal the widget degrades to best-effort
// line reading instead of failing, so piped invocations still work.
//
// Instances of a session are single-threaded: one call owns its terminal
// save/restore pair and its own edit state, and nesting calls is not
// supported.
package askline

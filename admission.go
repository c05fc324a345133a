package askline

import "unicode"

// admissible reports whether a typed rune may be inserted into the buffer
// for the given mode. This runs before any insertion and is independent of
// the post-submission validator: it narrows what can be typed, the validator
// decides whether the whole string is acceptable.
//
// ModeYesNo never reaches this predicate; its controller bypasses the buffer.
func admissible(r rune, mode Mode) bool {
	switch mode {
	case ModeText:
		return unicode.IsPrint(r)
	case ModeNumeric:
		return r >= '0' && r <= '9'
	case ModePassword:
		return unicode.IsGraphic(r) && !unicode.IsSpace(r)
	case ModeEmail:
		return isLetterOrDigit(r) || r == '+' || r == '.' || r == '-' || r == '_' || r == '@'
	case ModePhone:
		return (r >= '0' && r <= '9') || r == '-'
	case ModeIPv4:
		return (r >= '0' && r <= '9') || r == '.'
	case ModeIPv6:
		return isHexDigit(r) || r == ':'
	}
	return false
}

func isLetterOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

package askline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Outcome is the result of validating one submitted string.
type Outcome struct {
	OK      bool
	Message string // populated only when OK is false
}

func accepted() Outcome               { return Outcome{OK: true} }
func rejected(message string) Outcome { return Outcome{OK: false, Message: message} }

// emailShape matches the deliberately simplified local@domain.tld form:
// letters/digits/._%+- in the local part, dotted domain labels, and a top
// label of at least two letters. Full RFC parsing is out of scope.
var emailShape = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

// Validate applies the post-submission checks for the request, in order:
// empty/allow-empty, length bounds, then the mode's semantic check. The
// first failing check wins. An empty input with AllowEmpty set is accepted
// unconditionally and bypasses the remaining checks.
//
// Validation is pure and idempotent: the same input against the same request
// always yields the same outcome. ModeYesNo never reaches this function; its
// controller only ever produces "Y" or "N".
func Validate(input string, req Request) Outcome {
	if input == "" {
		if req.AllowEmpty {
			return accepted()
		}
		return rejected("input cannot be empty")
	}

	n := len([]rune(input))
	if req.MinLength > 0 && n < req.MinLength {
		return rejected(fmt.Sprintf("input must be at least %d characters", req.MinLength))
	}
	if req.MaxLength > 0 && n > req.MaxLength {
		return rejected(fmt.Sprintf("input must be at most %d characters", req.MaxLength))
	}

	switch req.Mode {
	case ModeNumeric:
		return validateNumeric(input, req)
	case ModeEmail:
		return validateEmail(input)
	case ModePhone:
		return validatePhone(input)
	case ModeIPv4:
		return validateIPv4(input)
	case ModeIPv6:
		return validateIPv6(input)
	}
	// Text and Password carry no semantic check beyond length.
	return accepted()
}

func validateNumeric(input string, req Request) Outcome {
	for _, r := range input {
		if r < '0' || r > '9' {
			return rejected("input must contain only digits")
		}
	}
	if req.MinValue == nil && req.MaxValue == nil {
		return accepted()
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		return rejected("input is not a valid number")
	}
	switch {
	case req.MinValue != nil && req.MaxValue != nil:
		if v < *req.MinValue || v > *req.MaxValue {
			return rejected(fmt.Sprintf("value must be between %d and %d", *req.MinValue, *req.MaxValue))
		}
	case req.MinValue != nil:
		if v < *req.MinValue {
			return rejected(fmt.Sprintf("value must be at least %d", *req.MinValue))
		}
	case req.MaxValue != nil:
		if v > *req.MaxValue {
			return rejected(fmt.Sprintf("value must be at most %d", *req.MaxValue))
		}
	}
	return accepted()
}

func validateEmail(input string) Outcome {
	if !emailShape.MatchString(input) {
		return rejected("invalid email address")
	}
	return accepted()
}

// validatePhone accepts US-style numbers: exactly ten digits once dashes are
// stripped.
func validatePhone(input string) Outcome {
	digits := strings.ReplaceAll(input, "-", "")
	if len(digits) != 10 {
		return rejected("phone number must have exactly 10 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return rejected("phone number must contain only digits and dashes")
		}
	}
	return accepted()
}

func validateIPv4(input string) Outcome {
	groups := strings.Split(input, ".")
	if len(groups) != 4 {
		return rejected("invalid IPv4 address")
	}
	for _, g := range groups {
		if g == "" || len(g) > 3 {
			return rejected("invalid IPv4 address")
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return rejected("invalid IPv4 address")
			}
		}
		v, err := strconv.Atoi(g)
		if err != nil || v > 255 {
			return rejected("invalid IPv4 address")
		}
	}
	return accepted()
}

// validateIPv6 applies the simplified structural check: hex digits and
// colons only, no run of three or more colons, and a colon count between 2
// and 7. It is intentionally not a full RFC 4291 parser.
func validateIPv6(input string) Outcome {
	colons := 0
	for _, r := range input {
		switch {
		case r == ':':
			colons++
		case isHexDigit(r):
		default:
			return rejected("invalid IPv6 address")
		}
	}
	if strings.Contains(input, ":::") {
		return rejected("invalid IPv6 address")
	}
	if colons < 2 || colons > 7 {
		return rejected("invalid IPv6 address")
	}
	return accepted()
}

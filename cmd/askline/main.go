// Command askline prompts the operator for one validated value and prints
// it to stdout. All interactive output (prompt, echo, errors) goes to
// stderr, so the result can be captured:
//
//	EMAIL=$(askline -prompt "Email: " -mode email)
//
// Exit codes: 0 success, 1 interrupted (Ctrl+C), 2 invalid configuration.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/askline/askline"
)

const (
	exitOK          = 0
	exitInterrupted = 1
	exitConfig      = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("askline", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		prompt     = fs.String("prompt", "> ", "prompt text")
		mode       = fs.String("mode", "text", "input mode: text|numeric|password|yesno|email|phone|ipv4|ipv6")
		minLength  = fs.Int("min-length", 0, "minimum input length (0 = unbounded)")
		maxLength  = fs.Int("max-length", 0, "maximum input length (0 = unbounded)")
		minValue   = fs.Int("min-value", 0, "minimum numeric value (numeric mode)")
		maxValue   = fs.Int("max-value", 0, "maximum numeric value (numeric mode)")
		hasBounds  = fs.Bool("value-bounds", false, "enforce -min-value/-max-value")
		defValue   = fs.String("default", "", "default value, accepted on empty Enter")
		prefill    = fs.String("prefill", "", "prefill value, seeded into the editable buffer")
		allowEmpty = fs.Bool("allow-empty", false, "accept an empty submission")
		errMsg     = fs.String("error-message", "", "override all validation messages")
		pause      = fs.Duration("error-pause", 0, "how long validation messages stay visible")
		plain      = fs.Bool("plain", false, "disable ANSI styling")
	)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return exitConfig
	}

	m, err := askline.ParseMode(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "askline:", err)
		return exitConfig
	}

	req := askline.Request{
		Prompt:       *prompt,
		Mode:         m,
		MinLength:    *minLength,
		MaxLength:    *maxLength,
		DefaultValue: *defValue,
		PrefillValue: *prefill,
		AllowEmpty:   *allowEmpty,
		ErrorMessage: *errMsg,
		ErrorPause:   *pause,
	}
	if *hasBounds {
		req.MinValue = minValue
		req.MaxValue = maxValue
	}
	if *plain {
		styles := askline.Plain
		req.Styles = &styles
	}

	value, err := askline.Run(req)
	switch {
	case errors.Is(err, askline.ErrInterrupted):
		return exitInterrupted
	case errors.Is(err, askline.ErrConfig):
		fmt.Fprintln(os.Stderr, "askline:", err)
		return exitConfig
	case err != nil:
		fmt.Fprintln(os.Stderr, "askline:", err)
		return exitInterrupted
	}

	// The single place the accepted value is ever written.
	fmt.Println(value)
	return exitOK
}

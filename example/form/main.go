// Package main demonstrates a small multi-field form built from askline
// prompts: every field is validated in place and the operator can cancel at
// any point with Ctrl+C.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/askline/askline"
)

func main() {
	fmt.Println("Signup form example")
	fmt.Println()

	fields := []struct {
		name string
		ask  func() (string, error)
	}{
		{"name", func() (string, error) {
			return askline.Input("Full name: ", askline.ModeText,
				askline.WithLengthBounds(1, 60),
			)
		}},
		{"email", func() (string, error) {
			return askline.Input("Email: ", askline.ModeEmail)
		}},
		{"age", func() (string, error) {
			return askline.Input("Age: ", askline.ModeNumeric,
				askline.WithValueBounds(1, 120),
			)
		}},
		{"phone", func() (string, error) {
			return askline.Input("Phone: ", askline.ModePhone,
				askline.WithAllowEmpty(),
			)
		}},
		{"host", func() (string, error) {
			return askline.Input("Server address: ", askline.ModeIPv4,
				askline.WithDefault("127.0.0.1"),
			)
		}},
		{"password", func() (string, error) {
			return askline.Input("Password: ", askline.ModePassword,
				askline.WithLengthBounds(8, 64),
			)
		}},
	}

	answers := make(map[string]string, len(fields))
	for _, f := range fields {
		value, err := f.ask()
		if err != nil {
			if errors.Is(err, askline.ErrInterrupted) {
				fmt.Println("form cancelled")
				return
			}
			log.Fatal(err)
		}
		answers[f.name] = value
	}

	confirm, err := askline.Input("Create account? ", askline.ModeYesNo,
		askline.WithDefault("y"),
	)
	if err != nil {
		if errors.Is(err, askline.ErrInterrupted) {
			fmt.Println("form cancelled")
			return
		}
		log.Fatal(err)
	}
	if confirm != "Y" {
		fmt.Println("aborted")
		return
	}

	fmt.Printf("account created for %s <%s>\n", answers["name"], answers["email"])
}

// Package main demonstrates basic usage of the askline library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/askline/askline"
)

func main() {
	fmt.Println("Basic askline example")
	fmt.Println("Press Ctrl+C to cancel")
	fmt.Println()

	name, err := askline.Input("Name: ", askline.ModeText,
		askline.WithLengthBounds(1, 40),
	)
	if err != nil {
		if errors.Is(err, askline.ErrInterrupted) {
			fmt.Println("cancelled")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("Hello, %s!\n", name)
}

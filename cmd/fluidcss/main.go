// Package main provides the fluidcss CLI for generating responsive CSS from
// viewport breakpoints.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		// Problems were already reported in full.
		if !errors.Is(err, errProblemsFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

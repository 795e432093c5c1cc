// Command promptctl generates, optimizes, evaluates and test-runs prompts from the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"prompt-optimizer/backend/internal/apperr"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Command completed
	ExitError        = 1 // Configuration or runtime error
	ExitInvalidInput = 2 // A flag or prompt was rejected
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, apperr.ErrValidation) {
			os.Exit(ExitInvalidInput)
		}
		os.Exit(ExitError)
	}
}

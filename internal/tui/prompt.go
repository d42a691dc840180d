package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var ErrNotInteractive = errors.New("stdin is not a terminal")

func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Confirm asks a yes/no question. It fails with ErrNotInteractive instead of
// blocking when there is no terminal to ask on.
func Confirm(title string) (bool, error) {
	if !Interactive() {
		return false, ErrNotInteractive
	}
	var result bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&result).
		Run()
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	return result, nil
}

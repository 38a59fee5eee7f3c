// Package clipboard copies descriptions to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility was found.
var ErrUnavailable = errors.New("clipboard unavailable")

// Available reports whether the system clipboard can be used.
func Available() bool {
	return !clipboard.Unsupported
}

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// WriteLines copies descriptions to the clipboard, one per line. Empty entries are skipped.
func WriteLines(lines []string) error {
	kept := lines[:0:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return Write(strings.Join(kept, "\n"))
}

// Read returns the clipboard contents.
func Read() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

// Package clipboard copies the selected caption to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when asked to copy an empty string.
var ErrEmpty = errors.New("clipboard: nothing to copy")

// Unsupported reports whether no clipboard utility is available on this system.
func Unsupported() bool {
	return clipboard.Unsupported
}

// WriteAll copies text to the clipboard.
func WriteAll(text string) error {
	if text == "" {
		return ErrEmpty
	}
	return clipboard.WriteAll(text)
}

// ReadAll returns the current clipboard text.
func ReadAll() (string, error) {
	return clipboard.ReadAll()
}

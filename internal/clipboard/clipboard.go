// Package clipboard reads the system clipboard, the raw-text source for
// every capture.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Read returns the clipboard text. It fails when the clipboard is
// unavailable or holds no text; callers report the failure once and do
// not retry.
func Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("clipboard has no text")
	}
	return text, nil
}

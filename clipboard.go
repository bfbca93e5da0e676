package window

import "github.com/atotto/clipboard"

// ClipboardProvider abstracts plain-text clipboard access.
//
// The runtime uses the host window's clipboard once a window exists and
// SystemClipboard before that.
type ClipboardProvider interface {
	// GetText retrieves text from the clipboard.
	// Returns empty string if the clipboard is empty or holds non-text data.
	GetText() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// SystemClipboard reaches the OS clipboard without a window, through the
// platform's clipboard utilities.
type SystemClipboard struct{}

// GetText implements ClipboardProvider. Read failures yield "".
func (SystemClipboard) GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		windowLogger.Debug("system clipboard read failed", "err", err)
		return ""
	}
	return text
}

// SetText implements ClipboardProvider. Write failures are logged.
func (SystemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		windowLogger.Warn("system clipboard write failed", "err", err)
	}
}

// Available reports whether a system clipboard utility was found.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

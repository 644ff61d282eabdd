package model

import (
	"fmt"
	"time"
)

// Window is a logical look-back range expressed in days.
type Window int

const (
	Window7d  Window = 7
	Window14d Window = 14
	Window30d Window = 30
)

// DefaultWindow is used when no valid range is requested.
const DefaultWindow = Window7d

// ParseWindow converts "7d", "14d" or "30d" into a Window.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "7d":
		return Window7d, nil
	case "14d":
		return Window14d, nil
	case "30d":
		return Window30d, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, s)
	}
}

// Days returns the window length in days.
func (w Window) Days() int { return int(w) }

// Duration returns the window length as a time.Duration.
func (w Window) Duration() time.Duration { return time.Duration(w) * 24 * time.Hour }

// Valid reports whether w is one of the supported ranges.
func (w Window) Valid() bool {
	return w == Window7d || w == Window14d || w == Window30d
}

// String returns the range label.
func (w Window) String() string {
	if !w.Valid() {
		return "unknown"
	}
	return fmt.Sprintf("%dd", int(w))
}

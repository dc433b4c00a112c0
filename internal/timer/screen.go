package timer

import "go.uber.org/atomic"

// Screen is the fullscreen sink. Implementations must be safe to call from
// any goroutine.
type Screen interface {
	EnterFullscreen() error
	ExitFullscreen() error
	IsFullscreen() bool
}

// FlagScreen only remembers the requested mode. The HTTP snapshot exposes
// it to clients and the terminal UI maps it onto the alternate screen.
type FlagScreen struct {
	on atomic.Bool
}

func NewFlagScreen() *FlagScreen {
	return &FlagScreen{}
}

func (f *FlagScreen) EnterFullscreen() error {
	f.on.Store(true)
	return nil
}

func (f *FlagScreen) ExitFullscreen() error {
	f.on.Store(false)
	return nil
}

func (f *FlagScreen) IsFullscreen() bool {
	return f.on.Load()
}

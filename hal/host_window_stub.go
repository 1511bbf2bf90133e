//go:build !tinygo && !cgo

package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
}

// RunWindow is unavailable without cgo; callers fall back to RunTerminal.
func RunWindow(func(HAL) func() error, WindowConfig) error {
	return ErrNoWindow
}

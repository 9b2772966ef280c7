//go:build !linux

package viewer

// Other platforms always have a window system available to the driver.
func displayAvailable() error { return nil }

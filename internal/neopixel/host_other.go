//go:build !pi

package neopixel

const defaultDriver = "mock"

// checkPin has no board to look at outside of the pi build.
func checkPin(_ int) error {
	return nil
}

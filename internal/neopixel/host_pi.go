//go:build pi

package neopixel

import (
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"
)

const defaultDriver = "rpi"

// checkPin makes sure the board actually exposes the pin.
func checkPin(gpio int) error {
	if err := initHost(); err != nil {
		return fmt.Errorf("unable to initialize periph: %w", err)
	}
	if gpioreg.ByName(fmt.Sprintf("GPIO%d", gpio)) == nil {
		return fmt.Errorf("pin not present on this board")
	}
	return nil
}

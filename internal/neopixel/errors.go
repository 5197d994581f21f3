package neopixel

import (
	"errors"
	"fmt"
)

// ErrDeviceClosed is returned by every operation on a device after Close.
var ErrDeviceClosed = errors.New("neopixel: device is closed")

// ConfigError is returned by Open when the configuration is rejected. Nothing has been allocated when it is returned.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("neopixel: invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InitError carries the status of a failed driver init.
type InitError struct {
	Status Status
}

func (e *InitError) Error() string {
	return fmt.Sprintf("neopixel: driver init failed (%d): %v", int(e.Status), e.Status)
}

// RenderError carries the status of a failed driver render or wait. The device stays usable.
type RenderError struct {
	Op     string
	Status Status
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("neopixel: driver %s failed (%d): %v", e.Op, int(e.Status), e.Status)
}

// OutOfRangeError is returned for a pixel or channel index outside [0, Length).
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("neopixel: index %d out of range [0, %d)", e.Index, e.Length)
}

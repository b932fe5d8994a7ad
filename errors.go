package rtscts

import "errors"

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrPortClosed       = errors.New("serial port is closed")
	ErrDeviceIO         = errors.New("device I/O error")

	// Usage errors, reported before the device is touched.
	// The messages are the exact console text.
	ErrExtraArguments = errors.New("extra arguments")
	ErrMissingDevice  = errors.New("use -d to specify serial device name")
	ErrMissingPin     = errors.New("use -p to specify modem pin name")
	ErrUnsupportedPin = errors.New("only rts/cts supported")
	ErrInputPin       = errors.New("cts is input, cannot be set")
)

// Exit codes returned by the command.
const (
	ExitOK     = 0
	ExitUsage  = 1
	ExitDevice = 2
)

// IsDeviceError reports whether err came from opening or controlling the device.
func IsDeviceError(err error) bool {
	return errors.Is(err, ErrDeviceIO) ||
		errors.Is(err, ErrDeviceNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrDeviceInUse) ||
		errors.Is(err, ErrPortClosed)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsDeviceError(err):
		return ExitDevice
	default:
		return ExitUsage
	}
}

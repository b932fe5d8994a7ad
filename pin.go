package rtscts

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Pin identifies a modem handshake line by its TIOCM bit.
type Pin int

const (
	PinRTS Pin = unix.TIOCM_RTS // Request To Send (output)
	PinCTS Pin = unix.TIOCM_CTS // Clear To Send (input)
)

// ParsePin maps a pin name to its bit. Names are matched exactly.
func ParsePin(name string) (Pin, error) {
	switch name {
	case "rts":
		return PinRTS, nil
	case "cts":
		return PinCTS, nil
	default:
		return 0, ErrUnsupportedPin
	}
}

// Bit returns the platform TIOCM bit value of the pin
func (p Pin) Bit() int {
	return int(p)
}

// IsInput reports whether the line is driven by the peer and cannot be set
func (p Pin) IsInput() bool {
	return p == PinCTS
}

func (p Pin) String() string {
	switch p {
	case PinRTS:
		return "rts"
	case PinCTS:
		return "cts"
	default:
		return fmt.Sprintf("pin(%d)", int(p))
	}
}

// Level is the requested state of a pin.
// LevelUnset means query only. Values other than LevelLow and LevelHigh
// neither query nor set.
type Level int

const (
	LevelUnset Level = -1
	LevelLow   Level = 0
	LevelHigh  Level = 1
)

// IsSet reports whether the level drives the pin
func (l Level) IsSet() bool {
	return l == LevelLow || l == LevelHigh
}

// Request is a single pin query or set, built once from the command line.
type Request struct {
	Device  string
	PinName string
	Level   Level
}

// Validate checks the request in the same order the command reports
// problems and returns the resolved pin.
func (r Request) Validate() (Pin, error) {
	if r.Device == "" {
		return 0, ErrMissingDevice
	}
	if r.PinName == "" {
		return 0, ErrMissingPin
	}
	pin, err := ParsePin(r.PinName)
	if err != nil {
		return 0, err
	}
	if r.Level != LevelUnset && pin.IsInput() {
		return 0, ErrInputPin
	}
	return pin, nil
}

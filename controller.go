package rtscts

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// ModemLine is the part of a Port the Controller drives
type ModemLine interface {
	GetPin(pin Pin) (bool, error)
	SetPin(pin Pin, state bool) error
	Close() error
}

// Opener opens the device named in a Request
type Opener func(device string) (ModemLine, error)

// Holder blocks until the operator releases a pin that was set.
// Closing the device resets the line, so the Controller keeps it open until then.
type Holder interface {
	Hold(ctx context.Context, pin Pin, level Level) error
}

// HolderFunc adapts a function to the Holder interface
type HolderFunc func(ctx context.Context, pin Pin, level Level) error

func (f HolderFunc) Hold(ctx context.Context, pin Pin, level Level) error {
	return f(ctx, pin, level)
}

// Controller queries or sets one modem pin per Run and reports the state on Out
type Controller struct {
	Out    io.Writer
	Open   Opener
	Holder Holder
	Log    zerolog.Logger
}

// OpenPort returns an Opener backed by Open with the given options
func OpenPort(opts ...Option) Opener {
	return func(device string) (ModemLine, error) {
		return Open(device, opts...)
	}
}

// Run validates req, opens the device and performs the query or set.
// Validation errors are returned before the device is opened.
func (c *Controller) Run(ctx context.Context, req Request) (err error) {
	pin, err := req.Validate()
	if err != nil {
		return err
	}
	log := c.Log.With().Str("device", req.Device).Str("pin", pin.String()).Int("level", int(req.Level)).Logger()

	line, err := c.Open(req.Device)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := line.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	switch {
	case req.Level == LevelUnset:
		return c.query(line, pin)
	case req.Level.IsSet():
		if err := c.set(line, pin, req.Level); err != nil {
			return err
		}
		log.Debug().Msg("holding pin until released")
		if c.Holder == nil {
			return nil
		}
		return c.Holder.Hold(ctx, pin, req.Level)
	default:
		log.Warn().Msg("level is neither 0 nor 1, nothing to do")
		return nil
	}
}

// query prints the current state of pin
func (c *Controller) query(line ModemLine, pin Pin) error {
	state, err := line.GetPin(pin)
	if err != nil {
		return err
	}
	c.report(pin, state)
	return nil
}

// set drives pin to level and prints the state read back afterwards
func (c *Controller) set(line ModemLine, pin Pin, level Level) error {
	fmt.Fprintf(c.Out, "set pin %d to %d\n", pin.Bit(), int(level))

	if err := line.SetPin(pin, level == LevelHigh); err != nil {
		return err
	}
	return c.query(line, pin)
}

func (c *Controller) report(pin Pin, high bool) {
	state := 0
	if high {
		state = 1
	}
	fmt.Fprintf(c.Out, "pin %d: %d\n", pin.Bit(), state)
}

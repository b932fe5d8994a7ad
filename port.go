package rtscts

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

var maskAny = errors.WithStack

// Port is an open serial device whose modem lines can be read and driven
type Port interface {
	Close() error

	// ModemBits returns the raw TIOCM status word
	ModemBits() (int, error)
	GetPin(pin Pin) (bool, error)
	SetPin(pin Pin, state bool) error
}

// port is the concrete implementation of the Port interface
type port struct {
	mu     sync.RWMutex
	fd     int
	device string
	log    zerolog.Logger
	closed bool
}

// Ensure port implements Port interface at compile time
var _ Port = (*port)(nil)

// DeviceError describes a failed open or ioctl on a serial device.
// It matches ErrDeviceIO, its Kind (if any) and the underlying errno with errors.Is.
type DeviceError struct {
	Op     string
	Device string
	Kind   error
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Device, e.Err)
}

func (e *DeviceError) Unwrap() []error {
	errs := []error{ErrDeviceIO}
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// classifyOpenError maps an open(2) errno to one of the device sentinels
func classifyOpenError(err error) error {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENODEV), errors.Is(err, unix.ENXIO):
		return ErrDeviceNotFound
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return ErrPermissionDenied
	case errors.Is(err, unix.EBUSY):
		return ErrDeviceInUse
	default:
		return nil
	}
}

// getModemStatus retrieves modem control signals using unix package
func getModemStatus(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCMGET)
}

// setModemBits raises the given TIOCM bits
func setModemBits(fd int, bits int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCMBIS, bits)
}

// clearModemBits lowers the given TIOCM bits
func clearModemBits(fd int, bits int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCMBIC, bits)
}

// Open opens a serial device with the given path and options
func Open(device string, opts ...Option) (Port, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	fd, err := unix.Open(device, config.OpenFlags, 0)
	if err != nil {
		return nil, maskAny(&DeviceError{Op: "open", Device: device, Kind: classifyOpenError(err), Err: err})
	}

	p := &port{
		fd:     fd,
		device: device,
		log:    config.Logger.With().Str("device", device).Logger(),
	}
	p.log.Debug().Int("fd", fd).Msg("opened device")

	return p, nil
}

// Close closes the device. The driver drops any pin levels set through
// this handle back to their defaults.
func (p *port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	err := unix.Close(p.fd)
	p.closed = true
	p.log.Debug().Msg("closed device")
	if err != nil {
		return maskAny(&DeviceError{Op: "close", Device: p.device, Err: err})
	}
	return nil
}

// ModemBits issues TIOCMGET
func (p *port) ModemBits() (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	status, err := getModemStatus(p.fd)
	if err != nil {
		return 0, maskAny(&DeviceError{Op: "TIOCMGET", Device: p.device, Err: err})
	}
	p.log.Debug().Int("status", status).Msg("read modem bits")
	return status, nil
}

// setBits issues TIOCMBIS with bits
func (p *port) setBits(bits int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	if err := setModemBits(p.fd, bits); err != nil {
		return maskAny(&DeviceError{Op: "TIOCMBIS", Device: p.device, Err: err})
	}
	p.log.Debug().Int("bits", bits).Msg("set modem bits")
	return nil
}

// clearBits issues TIOCMBIC with bits
func (p *port) clearBits(bits int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	if err := clearModemBits(p.fd, bits); err != nil {
		return maskAny(&DeviceError{Op: "TIOCMBIC", Device: p.device, Err: err})
	}
	p.log.Debug().Int("bits", bits).Msg("cleared modem bits")
	return nil
}

// GetPin returns the current state of a single pin
func (p *port) GetPin(pin Pin) (bool, error) {
	status, err := p.ModemBits()
	if err != nil {
		return false, err
	}
	return status&pin.Bit() != 0, nil
}

// SetPin raises (true) or lowers (false) an output pin
func (p *port) SetPin(pin Pin, state bool) error {
	if pin.IsInput() {
		return ErrInputPin
	}
	if state {
		return p.setBits(pin.Bit())
	}
	return p.clearBits(pin.Bit())
}

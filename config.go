package rtscts

import (
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// Config holds the configuration for opening a serial device
type Config struct {
	// OpenFlags are passed to open(2). The pins are only controlled through
	// ioctls, so read-only access is enough.
	OpenFlags int
	Logger    zerolog.Logger
}

// Option is a functional option for configuring a serial device
type Option func(*Config) error

// DefaultConfig returns a configuration that opens the device read-only
// without making it the controlling terminal, and discards log output.
func DefaultConfig() Config {
	return Config{
		OpenFlags: unix.O_RDONLY | unix.O_NOCTTY,
		Logger:    zerolog.Nop(),
	}
}

// WithLogger sets the logger used for diagnostic output
func WithLogger(log zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = log
		return nil
	}
}

// WithNonBlocking opens the device with O_NONBLOCK, so that opening a
// modem line without carrier does not wait for DCD.
func WithNonBlocking() Option {
	return func(c *Config) error {
		c.OpenFlags |= unix.O_NONBLOCK
		return nil
	}
}

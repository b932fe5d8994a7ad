// Package rtscts reads and drives the RTS (Request To Send) and CTS
// (Clear To Send) modem control pins of a serial device on Linux.
//
// The pins are accessed through the TIOCMGET, TIOCMBIS and TIOCMBIC ioctls
// on a file descriptor opened against the device node. No termios settings
// are changed.
//
// # Basic Usage
//
// Open a device and read a pin:
//
//	port, err := rtscts.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	cts, err := port.GetPin(rtscts.PinCTS)
//
// Raise RTS. The driver resets the line when the device is closed, so keep
// the port open for as long as the level must hold:
//
//	err = port.SetPin(rtscts.PinRTS, true)
//
// # Controller
//
// Controller implements the command line behaviour: it validates a Request,
// opens the device, queries or sets the pin, prints the state and hands over
// to a Holder after a set:
//
//	ctl := &rtscts.Controller{
//	    Out:  os.Stdout,
//	    Open: rtscts.OpenPort(),
//	}
//	err := ctl.Run(ctx, rtscts.Request{Device: "/dev/ttyUSB0", PinName: "rts", Level: rtscts.LevelUnset})
//
// # Error Handling
//
// Usage problems (ErrMissingDevice, ErrUnsupportedPin, ErrInputPin, ...)
// are reported before the device is touched. Failed opens and ioctls are
// returned as *DeviceError values, which match ErrDeviceIO and, for opens,
// one of ErrDeviceNotFound, ErrPermissionDenied or ErrDeviceInUse:
//
//	if errors.Is(err, rtscts.ErrDeviceNotFound) {
//	    // Handle missing device specifically
//	}
//
// ExitCode maps any of these errors to the process exit status.
package rtscts

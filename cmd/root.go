/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allbin/rtscts"
	"github.com/allbin/rtscts/internal/hold"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the process streams and device access so tests can replace them
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// open overrides how the device is opened; nil opens the real device
	open func(log zerolog.Logger) rtscts.Opener
}

type rootOptions struct {
	device string
	pin    string
	level  int
}

func newRootCmd(a *app) *cobra.Command {
	var opts rootOptions
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "rtscts -d <device> -p <rts|cts> [-s <0|1>]",
		Short: "Query or set the RTS/CTS pins of a serial device",
		Long: `Query or set the RTS (Request To Send) and CTS (Clear To Send)
modem control pins of a serial device.

Without -s the current state of the pin is printed. With -s the pin is
set, read back and held until a key is pressed, because closing the
device resets the line. CTS is an input and can only be queried.

Examples:
  rtscts -d /dev/ttyUSB0 -p rts
  rtscts -d /dev/ttyUSB0 -p cts
  rtscts -d /dev/ttyUSB0 -p rts -s 1`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return rtscts.ErrExtraArguments
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,

		// positional arguments are rejected, so no completion subcommand
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.stderr, v.GetString("log-level"))
			if err != nil {
				return err
			}

			req := rtscts.Request{
				Device:  opts.device,
				PinName: opts.pin,
				Level:   rtscts.Level(opts.level),
			}
			if info, err := rtscts.GetPortInfo(req.Device); err == nil {
				log.Debug().Str("device", info.Path).Str("description", info.Description).Msg("found serial device")
			}

			open := rtscts.OpenPort(rtscts.WithLogger(log), rtscts.WithNonBlocking())
			if a.open != nil {
				open = a.open(log)
			}

			ctl := &rtscts.Controller{
				Out:  cmd.OutOrStdout(),
				Open: open,
				Holder: &hold.Terminal{
					Device: req.Device,
					In:     a.stdin,
					Out:    a.stderr,
					Log:    log,
				},
				Log: log,
			}
			return ctl.Run(cmd.Context(), req)
		},
	}

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.device, "device", "d", "", "serial device path")
	flags.StringVarP(&opts.pin, "pin", "p", "", "pin to query or set: rts, cts")
	flags.IntVarP(&opts.level, "set", "s", int(rtscts.LevelUnset), "level to set: 0 or 1 (omit to query)")
	flags.String("log-level", "warn", "diagnostic log level written to stderr")

	v.SetEnvPrefix("rtscts")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))

	registerCompletions(rootCmd)

	return rootCmd
}

// newLogger returns a console logger on w at the named level
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", level)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger().Level(lvl), nil
}

// execute runs the command with args and returns the process exit code.
// Errors are reported as a single line on stdout.
func execute(a *app, args []string) int {
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(a.stdout, err)
		return rtscts.ExitCode(err)
	}
	return rtscts.ExitOK
}

// Execute runs the root command against the process streams and arguments
func Execute() int {
	return execute(&app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}, os.Args[1:])
}

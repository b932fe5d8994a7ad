// Package hold keeps a set pin level in place until the operator releases it.
package hold

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/allbin/rtscts"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Terminal waits for one input event on In.
// When In is a terminal an interactive prompt is drawn on Out,
// otherwise a single byte (or EOF) is read.
type Terminal struct {
	Device string
	In     io.Reader
	Out    io.Writer
	Log    zerolog.Logger
}

var _ rtscts.Holder = (*Terminal)(nil)

// Hold blocks until a key is pressed, In reaches EOF or ctx is done
func (t *Terminal) Hold(ctx context.Context, pin rtscts.Pin, level rtscts.Level) error {
	if f, ok := t.In.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return t.holdInteractive(ctx, f, pin, level)
	}
	return t.holdReader(ctx, pin, level)
}

func (t *Terminal) holdInteractive(ctx context.Context, in *os.File, pin rtscts.Pin, level rtscts.Level) error {
	t.Log.Debug().Msg("holding on terminal")
	p := tea.NewProgram(newModel(t.Device, pin, level),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(t.Out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(err, "hold prompt")
	}
	if m, ok := final.(model); ok && m.interrupted {
		t.Log.Debug().Msg("hold interrupted")
	}
	return nil
}

func (t *Terminal) holdReader(ctx context.Context, pin rtscts.Pin, level rtscts.Level) error {
	t.Log.Debug().Msg("holding on input stream")
	if t.Out != nil {
		fmt.Fprintf(t.Out, "%s held at %d, press enter to release\n", pin, int(level))
	}

	// Perform read in goroutine
	resultCh := make(chan error, 1)
	go func() {
		var buf [1]byte
		_, err := t.In.Read(buf[:])
		resultCh <- err
	}()

	select {
	case err := <-resultCh:
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "read release key")
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

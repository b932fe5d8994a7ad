package hold

import (
	"fmt"
	"strings"

	"github.com/allbin/rtscts"
	"github.com/allbin/rtscts/internal/tui/keys"
	"github.com/allbin/rtscts/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// model is the bubbletea model shown while a pin is held
type model struct {
	device      string
	pin         rtscts.Pin
	level       rtscts.Level
	keys        keys.HoldKeys
	help        help.Model
	released    bool
	interrupted bool
}

func newModel(device string, pin rtscts.Pin, level rtscts.Level) model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.HelpStyle
	return model{
		device: device,
		pin:    pin,
		level:  level,
		keys:   keys.NewHoldKeys(),
		help:   h,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.interrupted = key.Matches(msg, m.keys.Quit)
		m.released = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m model) View() string {
	if m.interrupted {
		return styles.ReleasedStyle.Render(fmt.Sprintf("interrupted, releasing %s", m.pin)) + "\n"
	}
	if m.released {
		return styles.ReleasedStyle.Render(fmt.Sprintf("released %s", m.pin)) + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("rtscts"))
	b.WriteString("\n")

	level := styles.GetLevelStyle(m.level == rtscts.LevelHigh).Render(fmt.Sprintf("%d", int(m.level)))
	prompt := fmt.Sprintf("%s on %s held at %s, closing the device resets it", m.pin, m.device, level)
	b.WriteString(styles.PromptStyle.Render(prompt))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

package menu

import (
	"fmt"

	"github.com/rs/zerolog"

	"activityhub/internal/domain"
)

// Option is one dispatchable menu entry.
type Option struct {
	Label string
	Run   func() error
}

// Menu drives one labeled menu until its exit entry is chosen. The option
// list is fixed at construction and never mutated; the displayed index is
// 1-based and the reserved final index always exits the loop.
type Menu struct {
	Title     string   // rendered as a header on every pass when set
	Lead      string   // optional line printed above the options
	Options   []Option // dispatchable entries; the exit entry is appended
	ExitLabel string   // label of the reserved final entry
	ExitNotes []string // lines printed when the exit entry is chosen
	Numbering string   // index/label format, defaults to "%d. %s"
	Log       *zerolog.Logger
}

// Run loops between displaying the option list and dispatching the chosen
// handler. The prompter guarantees the choice is numeric and in range
// before Run sees it. Input stream exhaustion propagates up as io.EOF.
func (m *Menu) Run(c domain.Console, p domain.Prompter) error {
	numbering := m.Numbering
	if numbering == "" {
		numbering = "%d. %s"
	}
	exit := len(m.Options) + 1

	for {
		if m.Title != "" {
			c.Header(m.Title)
		}
		if m.Lead != "" {
			c.Say(m.Lead)
		}
		for i, opt := range m.Options {
			c.Sayf(numbering, i+1, opt.Label)
		}
		c.Sayf(numbering, exit, m.ExitLabel)
		c.Rule()

		choice, err := p.IntInRange(fmt.Sprintf("Enter choice (1-%d): ", exit), 1, exit)
		if err != nil {
			return err
		}
		if choice == exit {
			for _, note := range m.ExitNotes {
				c.Say(note)
			}
			return nil
		}

		opt := m.Options[choice-1]
		if m.Log != nil {
			m.Log.Debug().Int("choice", choice).Str("label", opt.Label).Msg("dispatching menu entry")
		}
		if err := opt.Run(); err != nil {
			return err
		}
	}
}

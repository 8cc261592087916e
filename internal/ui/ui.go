package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled. The toast queue's notify hook is wired to
// the program so timer-driven dismissals trigger a repaint.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a store")
	}
	if opts.Toasts == nil {
		return fmt.Errorf("ui requires a toast queue")
	}

	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)

	opts.Toasts.SetNotify(func() {
		p.Send(toastsChangedMsg{})
	})
	defer opts.Toasts.SetNotify(nil)

	_, err := p.Run()
	return err
}

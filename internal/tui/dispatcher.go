package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramDispatcher delivers sync callbacks on the bubbletea event loop by
// sending them to the program as messages. It is created before the program
// exists and bound once the program is built; deliveries made before that
// are held back.
type ProgramDispatcher struct {
	mu      sync.Mutex
	program *tea.Program
	pending []func()
}

func NewProgramDispatcher() *ProgramDispatcher {
	return &ProgramDispatcher{}
}

// Dispatch blocks until the event loop accepts the delivery or the program
// has exited.
func (d *ProgramDispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	p := d.program
	if p == nil {
		d.pending = append(d.pending, fn)
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	p.Send(deliveryMsg{deliver: fn})
}

func (d *ProgramDispatcher) bind(p *tea.Program) {
	d.mu.Lock()
	d.program = p
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(pending) == 0 {
		return
	}
	// Send blocks until Run starts reading.
	go func() {
		for _, fn := range pending {
			p.Send(deliveryMsg{deliver: fn})
		}
	}()
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// deliveryMsg carries one callback delivery from the sync layer onto the
// program's event loop.
type deliveryMsg struct {
	deliver func()
}

// listResultMsg is one delivery of a user-initiated refresh; ch yields the
// rest.
type listResultMsg struct {
	result service.Result[[]models.Product]
	ch     <-chan service.Result[[]models.Product]
}

type listDoneMsg struct{}

// productsMsg replaces the visible list with a background refresh result.
type productsMsg struct {
	products []models.Product
}

type productSavedMsg struct {
	product models.Product
	created bool
}

type productDeletedMsg struct {
	product models.Product
}

type failureMsg struct {
	action     string
	message    string
	background bool
}

// mailbox collects messages produced by callbacks while a delivery runs.
// It is only touched on the event loop, so it needs no locking.
type mailbox struct {
	msgs []tea.Msg
}

func (b *mailbox) post(msg tea.Msg) {
	b.msgs = append(b.msgs, msg)
}

func (b *mailbox) drain() []tea.Msg {
	out := b.msgs
	b.msgs = nil
	return out
}

// deliverTo builds a callback that turns each outcome into a message in box.
func deliverTo[T any](box *mailbox, onSuccess func(T) tea.Msg, onFailure func(string) tea.Msg) service.Callback[T] {
	return service.CallbackFuncs[T]{
		Success: func(v T) { box.post(onSuccess(v)) },
		Failure: func(msg string) { box.post(onFailure(msg)) },
	}
}

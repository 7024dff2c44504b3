package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type screenMode int

const (
	modeList screenMode = iota
	modeForm
	modeConfirm
	modeError
)

type mainLoopModel struct {
	ctx      context.Context
	products service.ClientProductService
	box      *mailbox
	copy     func(string) error

	list listModel
	mode screenMode

	form          productForm
	confirm       confirmModel
	confirmTarget models.Product
	overlay       errorOverlayModel
	afterOverlay  screenMode
}

func newMainLoopModel(ctx context.Context, products service.ClientProductService, box *mailbox, copyFn func(string) error) mainLoopModel {
	list := newListModel()
	list.refreshing = true

	return mainLoopModel{
		ctx:      ctx,
		products: products,
		box:      box,
		copy:     copyFn,
		list:     list,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdList())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case deliveryMsg:
		msg.deliver()
		return m.drainMailbox()
	case listResultMsg:
		m.applyList(msg.result)
		return m, waitForList(msg.ch)
	case listDoneMsg:
		m.list.refreshing = false
		return m, nil
	case productsMsg:
		m.list.setItems(msg.products)
		m.list.lastErr = ""
		return m, nil
	case productSavedMsg:
		m.list.upsert(msg.product)
		if msg.created {
			m.list.status = "Product created"
		} else {
			m.list.status = "Product updated"
		}
		return m, nil
	case productDeletedMsg:
		m.list.remove(msg.product.ID)
		m.list.status = "Product deleted"
		return m, nil
	case failureMsg:
		m.applyFailure(msg)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(keyMsg)
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	case modeError:
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.mode = m.afterOverlay
		}
		return m, nil
	}

	return m.updateList(keyMsg)
}

// drainMailbox feeds the messages posted by the last delivery back through
// Update.
func (m mainLoopModel) drainMailbox() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, posted := range m.box.drain() {
		next, cmd := m.Update(posted)
		m = next.(mainLoopModel)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.list.moveDown()
	case key.Matches(keyMsg, keys.newItem):
		m.form = newProductForm(models.Product{})
		m.mode = modeForm
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.list.current()
		if !ok {
			m.list.status = "No products"
			return m, nil
		}
		m.form = newProductForm(item)
		m.mode = modeForm
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			m.list.status = "No products"
			return m, nil
		}
		m.confirmTarget = item
		m.confirm = confirmModel{message: item.Name}
		m.mode = modeConfirm
	case key.Matches(keyMsg, keys.refresh):
		if m.list.refreshing {
			return m, nil
		}
		m.list.refreshing = true
		m.list.status = ""
		return m, tea.Batch(m.list.spinner.Tick, m.cmdList())
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.list.current()
		if !ok {
			m.list.status = errNothingToCopy.Error()
			return m, nil
		}
		if err := m.copy(item.String()); err != nil {
			m.list.lastErr = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.list.status = "Copied"
	}

	return m, nil
}

func (m mainLoopModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		product, err := m.form.product()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.mode = modeList
		m.list.lastErr = ""
		m.list.status = "Saving..."

		if m.form.editing() {
			m.products.Update(m.ctx, product, m.saveCallback(false))
		} else {
			m.products.Create(m.ctx, product, m.saveCallback(true))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = modeList
		m.list.lastErr = ""
		m.list.status = "Deleting..."
		target := m.confirmTarget
		m.products.Delete(m.ctx, target, deliverTo(m.box,
			func(models.Unit) tea.Msg { return productDeletedMsg{product: target} },
			func(message string) tea.Msg { return failureMsg{action: "delete", message: message} },
		))
	case key.Matches(keyMsg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m mainLoopModel) saveCallback(created bool) service.Callback[models.Product] {
	action := "update"
	if created {
		action = "create"
	}
	return deliverTo(m.box,
		func(p models.Product) tea.Msg { return productSavedMsg{product: p, created: created} },
		func(message string) tea.Msg { return failureMsg{action: action, message: message} },
	)
}

// backgroundCallback receives the periodic refresh results.
func (m mainLoopModel) backgroundCallback() service.Callback[[]models.Product] {
	return deliverTo(m.box,
		func(items []models.Product) tea.Msg { return productsMsg{products: items} },
		func(message string) tea.Msg {
			return failureMsg{action: "refresh", message: message, background: true}
		},
	)
}

func (m *mainLoopModel) applyList(result service.Result[[]models.Product]) {
	if result.Failed {
		m.list.loading = false
		m.list.lastErr = withHint(result.Message)
		return
	}
	m.list.setItems(result.Value)
	m.list.lastErr = ""
}

func (m *mainLoopModel) applyFailure(msg failureMsg) {
	if msg.background {
		m.list.lastErr = withHint(msg.message)
		return
	}

	m.list.status = ""
	m.afterOverlay = modeList
	if msg.action == "create" || msg.action == "update" {
		m.afterOverlay = modeForm
	}
	m.overlay = errorOverlayModel{
		title:   "Could not " + msg.action + " product",
		message: msg.message,
		hint:    serverUnavailableHint(msg.message),
	}
	m.mode = modeError
}

func (m mainLoopModel) cmdList() tea.Cmd {
	ctx := m.ctx
	products := m.products
	return func() tea.Msg {
		return waitForList(products.ListStream(ctx))()
	}
}

func waitForList(ch <-chan service.Result[[]models.Product]) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-ch
		if !ok {
			return listDoneMsg{}
		}
		return listResultMsg{result: result, ch: ch}
	}
}

func withHint(message string) string {
	if hint := serverUnavailableHint(message); hint != "" {
		return message + " (" + hint + ")"
	}
	return message
}

func (m mainLoopModel) acceptsShortcuts() bool {
	return m.mode == modeList
}

func (m mainLoopModel) View() string {
	var body string
	switch m.mode {
	case modeForm:
		return m.form.View()
	case modeConfirm:
		body = m.list.View() + "\n\n" + m.confirm.View()
	case modeError:
		body = m.list.View() + "\n\n" + m.overlay.View()
	default:
		body = m.list.View()
	}

	return renderPage("GoStockKeeper", body,
		"n: new  e: edit  d: delete  r: refresh  c: copy  v: about  q: quit")
}

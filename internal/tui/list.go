package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// lowStockThreshold marks products that are about to run out.
const lowStockThreshold = 5

type listModel struct {
	items      []models.Product
	idx        int
	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
	lastErr    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Product, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Product{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(items []models.Product) {
	selected, hadSelection := m.current()

	m.items = append(m.items[:0:0], items...)
	sortProducts(m.items)
	m.loading = false

	if hadSelection {
		if i := indexOf(m.items, selected.ID); i >= 0 {
			m.idx = i
		}
	}
	m.clampCursor()
}

// upsert replaces the product with the same id or adds it, then selects it.
func (m *listModel) upsert(p models.Product) {
	if i := indexOf(m.items, p.ID); i >= 0 {
		m.items[i] = p
	} else {
		m.items = append(m.items, p)
	}
	sortProducts(m.items)
	m.idx = indexOf(m.items, p.ID)
	m.clampCursor()
}

func (m *listModel) remove(id int64) {
	i := indexOf(m.items, id)
	if i < 0 {
		return
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.clampCursor()
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m *listModel) clampCursor() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.items) == 0 {
		b.WriteString("No products\n")
	} else {
		for i, item := range m.items {
			line := fmt.Sprintf("%-32s %8s  x%d",
				fitText(item.Name, 32), item.Price.StringFixed(2), item.Quantity)
			switch {
			case i == m.idx:
				b.WriteString(selectedStyle.Render("> " + line))
			case item.Quantity < lowStockThreshold:
				b.WriteString(lowStockStyle.Render("  " + line))
			default:
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.refreshing {
		b.WriteString("\n" + m.spinner.View() + " refreshing\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.lastErr) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func sortProducts(items []models.Product) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

func indexOf(items []models.Product, id int64) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

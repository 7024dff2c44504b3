package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	fieldName = iota
	fieldPrice
	fieldQuantity
)

// productForm edits one product. A zero id means the form creates a new one.
type productForm struct {
	id     int64
	inputs []textinput.Model
	focus  int
	err    string
}

func newProductForm(p models.Product) productForm {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 255
	name.Width = 40

	price := textinput.New()
	price.Placeholder = "price, e.g. 9.99"
	price.Width = 20

	quantity := textinput.New()
	quantity.Placeholder = "quantity"
	quantity.Width = 20

	if p.ID != 0 {
		name.SetValue(p.Name)
		price.SetValue(p.Price.StringFixed(2))
		quantity.SetValue(strconv.Itoa(p.Quantity))
	}

	f := productForm{
		id:     p.ID,
		inputs: []textinput.Model{name, price, quantity},
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f productForm) editing() bool {
	return f.id != 0
}

func (f productForm) update(msg tea.Msg) (productForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.setFocus(f.focus + 1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus(f.focus - 1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *productForm) setFocus(i int) {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = ((i % n) + n) % n
	f.inputs[f.focus].Focus()
}

// product parses the inputs. Validation mirrors what the server accepts so
// that most mistakes never leave the terminal.
func (f productForm) product() (models.Product, error) {
	name := strings.TrimSpace(f.inputs[fieldName].Value())
	if name == "" {
		return models.Product{}, errEmptyName
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldPrice].Value()))
	if err != nil || price.IsNegative() {
		return models.Product{}, errInvalidPrice
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(f.inputs[fieldQuantity].Value()))
	if err != nil || quantity < 0 {
		return models.Product{}, errInvalidQuantity
	}

	return models.Product{
		ID:       f.id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}, nil
}

func (f productForm) View() string {
	title := "NEW PRODUCT"
	if f.editing() {
		title = "EDIT PRODUCT #" + strconv.FormatInt(f.id, 10)
	}

	labels := []string{"Name", "Price", "Quantity"}
	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(labels[i])
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	if f.err != "" {
		b.WriteString(errorStyle.Render(f.err))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field  enter: save  esc: cancel")
}

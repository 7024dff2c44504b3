package tui

type errorOverlayModel struct {
	title   string
	message string
	hint    string
}

func (m errorOverlayModel) View() string {
	title := m.title
	if title == "" {
		title = "Error"
	}
	content := errorStyle.Render(title) + "\n\n" + m.message
	if m.hint != "" {
		content += "\n" + helpStyle.Render(m.hint)
	}
	content += "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// RootModel owns the global hotkeys and the about window, and hands
// everything else to the product screen.
type RootModel struct {
	main      mainLoopModel
	buildInfo models.AppBuildInfo

	showBuildInfo bool
}

func NewRootModel(main mainLoopModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{main: main, buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	return r.main.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.Matches(keyMsg, keys.buildInfo) && r.main.acceptsShortcuts() {
			r.showBuildInfo = true
			return r, nil
		}
	}

	// Deliveries keep flowing while the about window is open.
	next, cmd := r.main.Update(msg)
	r.main = next.(mainLoopModel)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	return appStyle.Render(r.main.View())
}

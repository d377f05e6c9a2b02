package models

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/terrain/services/world"
)

// ViewType represents the different views in the explorer
type ViewType int

const (
	MenuView ViewType = iota
	TerrainExplorerView
	WorldOverviewView
)

const viewCount = 3

// App is the main application model
type App struct {
	world *world.World

	// Current state
	currentView ViewType
	width       int
	height      int

	// View models
	menu     MenuModel
	explorer TerrainExplorerModel
	overview WorldOverviewModel

	// UI state
	showHelp bool
}

// NewApp creates a new application instance
func NewApp(w *world.World, startView string) *App {
	app := &App{
		world:       w,
		currentView: MenuView,
	}

	app.menu = NewMenuModel()
	app.explorer = NewTerrainExplorerModel(w)
	app.overview = NewWorldOverviewModel(w)

	switch startView {
	case "terrain":
		app.currentView = TerrainExplorerView
	case "overview":
		app.currentView = WorldOverviewView
	default:
		app.currentView = MenuView
	}

	return app
}

// Init initializes the application
func (m *App) Init() tea.Cmd {
	log.Debug("Initializing terrain explorer")

	switch m.currentView {
	case MenuView:
		return m.menu.Init()
	case TerrainExplorerView:
		return m.explorer.Init()
	case WorldOverviewView:
		return m.overview.Init()
	}

	return nil
}

// Update handles messages and updates the application state
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.menu.SetSize(msg.Width, msg.Height)
		m.explorer.SetSize(msg.Width, msg.Height)
		m.overview.SetSize(msg.Width, msg.Height)

		return m, nil

	case tea.KeyMsg:
		// Global key bindings
		switch msg.String() {
		case "ctrl+c", "q":
			if m.currentView == MenuView {
				return m, tea.Quit
			}
			// If not in menu, go back to menu instead of quitting
			m.currentView = MenuView
			return m, m.menu.Init()

		case "?":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			m.currentView = ViewType((int(m.currentView) + 1) % viewCount)
			return m, m.getCurrentViewModel().Init()

		case "1":
			if m.currentView == MenuView {
				m.currentView = TerrainExplorerView
				return m, m.explorer.Init()
			}
		case "2":
			if m.currentView == MenuView {
				m.currentView = WorldOverviewView
				return m, m.overview.Init()
			}
		}

	case SwitchViewMsg:
		m.currentView = msg.View
		return m, m.getCurrentViewModel().Init()
	}

	// Handle help view
	if m.showHelp {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "?" {
			m.showHelp = false
		}
		return m, nil
	}

	// Route message to current view
	switch m.currentView {
	case MenuView:
		newModel, cmd := m.menu.Update(msg)
		m.menu = newModel.(MenuModel)
		return m, cmd
	case TerrainExplorerView:
		newModel, cmd := m.explorer.Update(msg)
		m.explorer = newModel.(TerrainExplorerModel)
		return m, cmd
	case WorldOverviewView:
		newModel, cmd := m.overview.Update(msg)
		m.overview = newModel.(WorldOverviewModel)
		return m, cmd
	}

	return m, cmd
}

// View renders the application
func (m *App) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.currentView {
	case MenuView:
		return m.menu.View()
	case TerrainExplorerView:
		return m.explorer.View()
	case WorldOverviewView:
		return m.overview.View()
	}

	return "Unknown view"
}

// getCurrentViewModel returns the current view's model
func (m *App) getCurrentViewModel() tea.Model {
	switch m.currentView {
	case MenuView:
		return &m.menu
	case TerrainExplorerView:
		return &m.explorer
	case WorldOverviewView:
		return &m.overview
	}
	return &m.menu
}

// renderHelp renders the help screen
func (m *App) renderHelp() string {
	help := `
Terrain Explorer - Help

Global keys:
  q, Ctrl+C    Quit (from menu) / back to menu
  ?            Toggle this help
  Tab          Cycle through views
  1-2          Select view (from menu)

Views:
  1. Terrain Explorer - walk the generated world chunk by chunk
  2. World Overview   - seed, tuning, and cache statistics

Navigation:
  Arrow keys   Move the cursor inside a chunk
  Shift+Arrow  Move to the neighboring chunk
  i            Toggle info panel
  r            Regenerate stats

Press ? again to close this help
`
	return help
}

// SwitchViewMsg is a message to switch views
type SwitchViewMsg struct {
	View ViewType
}

// NewSwitchViewMsg creates a new switch view message
func NewSwitchViewMsg(view ViewType) SwitchViewMsg {
	return SwitchViewMsg{View: view}
}

package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/terrain/cmd/explorer/components"
	"github.com/VoidMesh/terrain/services/resource"
	"github.com/VoidMesh/terrain/services/world"
)

// TerrainExplorerModel renders one chunk as a colored grid with a movable
// cursor. Chunk navigation walks the infinite world; every chunk shown is
// generated on demand through the ordinary query surface.
type TerrainExplorerModel struct {
	world *world.World

	currentChunkX int
	currentChunkY int
	cursorX       int
	cursorY       int
	width         int
	height        int

	showInfo bool
}

// NewTerrainExplorerModel creates a new terrain explorer model
func NewTerrainExplorerModel(w *world.World) TerrainExplorerModel {
	size := w.Chunks.Size()
	return TerrainExplorerModel{
		world:    w,
		cursorX:  size / 2,
		cursorY:  size / 2,
		showInfo: true,
	}
}

// Init initializes the terrain explorer
func (m TerrainExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles terrain explorer messages
func (m TerrainExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	size := m.world.Chunks.Size()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Cursor movement within chunk
		case "up", "k":
			if m.cursorY > 0 {
				m.cursorY--
			}
		case "down", "j":
			if m.cursorY < size-1 {
				m.cursorY++
			}
		case "left", "h":
			if m.cursorX > 0 {
				m.cursorX--
			}
		case "right", "l":
			if m.cursorX < size-1 {
				m.cursorX++
			}

		// Chunk navigation
		case "shift+up", "K":
			m.currentChunkY--
			m.cursorX = size / 2
			m.cursorY = size / 2
		case "shift+down", "J":
			m.currentChunkY++
			m.cursorX = size / 2
			m.cursorY = size / 2
		case "shift+left", "H":
			m.currentChunkX--
			m.cursorX = size / 2
			m.cursorY = size / 2
		case "shift+right", "L":
			m.currentChunkX++
			m.cursorX = size / 2
			m.cursorY = size / 2

		case "i":
			m.showInfo = !m.showInfo
		}
	}

	return m, nil
}

// View renders the terrain explorer
func (m TerrainExplorerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	title := components.TitleStyle.Render(
		fmt.Sprintf("Terrain Explorer - chunk (%d, %d)", m.currentChunkX, m.currentChunkY))
	s.WriteString(title + "\n")

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderGrid(),
		m.renderInfoPanel(),
	)
	s.WriteString(mainContent + "\n")

	s.WriteString(m.renderStatusBar())

	return s.String()
}

// renderGrid renders the chunk grid colored by terrain class
func (m TerrainExplorerModel) renderGrid() string {
	c := m.world.Chunks.ChunkAt(m.currentChunkX, m.currentChunkY)
	size := c.Size()

	nodeMap := make(map[[2]int]resource.Node)
	for _, node := range m.world.Resources.NodesIn(m.currentChunkX, m.currentChunkY) {
		nodeMap[[2]int{node.LocalX, node.LocalY}] = node
	}

	var gridRows []string
	for y := 0; y < size; y++ {
		var row []string
		for x := 0; x < size; x++ {
			v, _ := c.Tile(x, y)
			class := m.world.Terrain.Classify(v)

			cellContent := components.TileSymbol
			cellStyle := components.GridCellStyle.Foreground(components.GetClassColor(class))

			if node, exists := nodeMap[[2]int{x, y}]; exists {
				cellContent = components.GetNodeSymbol(node.Type)
				cellStyle = components.GridCellStyle.Foreground(components.GetNodeColor(node.Type))
			}

			if x == m.cursorX && y == m.cursorY {
				cellStyle = components.GridSelectedCellStyle
				cellContent = components.CursorSymbol
			}

			row = append(row, cellStyle.Render(cellContent))
		}
		gridRows = append(gridRows, strings.Join(row, ""))
	}

	grid := strings.Join(gridRows, "\n")

	return components.BorderStyle.
		Width(size*2 + 2).
		Render(grid)
}

// renderInfoPanel renders the information panel for the cursor position
func (m TerrainExplorerModel) renderInfoPanel() string {
	if !m.showInfo {
		return ""
	}

	size := m.world.Chunks.Size()
	worldX := m.currentChunkX*size + m.cursorX
	worldY := m.currentChunkY*size + m.cursorY

	height := m.world.Terrain.HeightAt(float64(worldX), float64(worldY))
	class := m.world.Terrain.Classify(height)
	walkable := m.world.Terrain.IsWalkable(float64(worldX), float64(worldY))

	var info strings.Builder

	info.WriteString(components.SubtitleStyle.Render("Position") + "\n")
	info.WriteString(fmt.Sprintf("Chunk: (%d, %d)\n", m.currentChunkX, m.currentChunkY))
	info.WriteString(fmt.Sprintf("Local: (%d, %d)\n", m.cursorX, m.cursorY))
	info.WriteString(fmt.Sprintf("World: (%d, %d)\n\n", worldX, worldY))

	info.WriteString(components.SubtitleStyle.Render("Terrain") + "\n")
	info.WriteString(fmt.Sprintf("Height: %+.4f\n", height))
	info.WriteString(fmt.Sprintf("Class: %s\n", class))
	info.WriteString(fmt.Sprintf("Walkable: %v\n\n", walkable))

	info.WriteString(components.SubtitleStyle.Render("Resource") + "\n")
	if node, ok := m.world.Resources.NodeAt(worldX, worldY); ok {
		info.WriteString(fmt.Sprintf("Type: %s\n", node.Type))
		info.WriteString(fmt.Sprintf("Yield: %d\n", node.Yield))
		info.WriteString(fmt.Sprintf("ID: %s\n", node.ID))
	} else {
		info.WriteString("No node at this position\n")
	}

	info.WriteString("\n" + components.SubtitleStyle.Render("Legend") + "\n")
	info.WriteString(",, Herb      %% Berry\n")
	info.WriteString("## Tree      [] Stone\n")
	info.WriteString("Fe Iron      >< Cursor\n")

	info.WriteString("\n" + components.SubtitleStyle.Render("Controls") + "\n")
	info.WriteString("Arrow keys: Move cursor\n")
	info.WriteString("Shift+Arrow: Move chunk\n")
	info.WriteString("i: Toggle info  q: Back\n")

	return components.InfoPanelStyle.Render(info.String())
}

// renderStatusBar renders the status bar
func (m TerrainExplorerModel) renderStatusBar() string {
	status := []string{
		fmt.Sprintf("Seed: %d", m.world.Seed()),
		fmt.Sprintf("Resident chunks: %d", m.world.Chunks.Len()),
		fmt.Sprintf("Generated: %d", m.world.Chunks.GeneratedCount()),
	}

	statusText := strings.Join(status, " • ")
	return components.StatusBarStyle.Width(m.width).Render(statusText)
}

// SetSize updates the terrain explorer size
func (m *TerrainExplorerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

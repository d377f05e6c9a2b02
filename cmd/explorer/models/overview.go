package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/VoidMesh/terrain/cmd/explorer/components"
	"github.com/VoidMesh/terrain/services/world"
)

// WorldOverviewModel shows the session's identity, tuning, and cache state.
type WorldOverviewModel struct {
	world  *world.World
	width  int
	height int
}

// NewWorldOverviewModel creates a new overview model
func NewWorldOverviewModel(w *world.World) WorldOverviewModel {
	return WorldOverviewModel{world: w}
}

// Init initializes the overview
func (m WorldOverviewModel) Init() tea.Cmd {
	return nil
}

// Update handles overview messages
func (m WorldOverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the overview
func (m WorldOverviewModel) View() string {
	var s strings.Builder

	title := components.TitleStyle.Render("World Overview")
	s.WriteString(title + "\n\n")

	cfg := m.world.Config()

	var body strings.Builder
	body.WriteString(components.SubtitleStyle.Render("Identity") + "\n")
	body.WriteString(fmt.Sprintf("World ID: %s\n", m.world.ID))
	body.WriteString(fmt.Sprintf("Name: %s\n", m.world.Name))
	body.WriteString(fmt.Sprintf("Seed: %d\n\n", m.world.Seed()))

	body.WriteString(components.SubtitleStyle.Render("Terrain tuning") + "\n")
	body.WriteString(fmt.Sprintf("Chunk size: %d tiles\n", cfg.Terrain.ChunkSize))
	body.WriteString(fmt.Sprintf("Tile size: %d px\n", cfg.Terrain.TileSize))
	body.WriteString(fmt.Sprintf("Frequency scale: %g\n", cfg.Terrain.FrequencyScale))
	body.WriteString(fmt.Sprintf("Octaves: %d\n", cfg.Terrain.Fractal.Octaves))
	body.WriteString(fmt.Sprintf("Lacunarity: %g\n", cfg.Terrain.Fractal.Lacunarity))
	body.WriteString(fmt.Sprintf("Gain: %g\n\n", cfg.Terrain.Fractal.Gain))

	t := cfg.Terrain.Thresholds
	body.WriteString(components.SubtitleStyle.Render("Class boundaries") + "\n")
	body.WriteString(fmt.Sprintf("Water < %g <= Sand < %g <= Grass < %g\n", t.Water, t.Sand, t.Grass))
	body.WriteString(fmt.Sprintf("<= Dirt < %g <= Rock < %g <= Snow\n\n", t.Dirt, t.Rock))

	body.WriteString(components.SubtitleStyle.Render("Chunk cache") + "\n")
	body.WriteString(fmt.Sprintf("Resident chunks: %d\n", m.world.Chunks.Len()))
	body.WriteString(fmt.Sprintf("Generations run: %d\n", m.world.Chunks.GeneratedCount()))

	s.WriteString(components.BorderStyle.Render(body.String()) + "\n\n")

	statusBar := components.StatusBarStyle.Width(m.width).Render("Press 'q' to go back")
	s.WriteString(statusBar)

	return s.String()
}

// SetSize updates the overview size
func (m *WorldOverviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

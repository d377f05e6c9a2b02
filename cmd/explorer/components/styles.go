package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/terrain/services/resource"
	"github.com/VoidMesh/terrain/services/terrain"
)

// Color definitions
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	AccentColor    = lipgloss.Color("#FFD700")

	// Grayscale
	LightGray = lipgloss.Color("#D9D9D9")
	Gray      = lipgloss.Color("#8B8B8B")
	DarkGray  = lipgloss.Color("#383838")

	// Terrain class colors
	WaterColor = lipgloss.Color("#2A5CAA")
	SandColor  = lipgloss.Color("#D8C97A")
	GrassColor = lipgloss.Color("#4C9A3F")
	DirtColor  = lipgloss.Color("#8A5F3B")
	RockColor  = lipgloss.Color("#6E6E6E")
	SnowColor  = lipgloss.Color("#EEEEF4")

	// Resource node colors
	HerbColor  = lipgloss.Color("#7CFC00")
	BerryColor = lipgloss.Color("#8B0000")
	WoodColor  = lipgloss.Color("#8B4513")
	StoneColor = lipgloss.Color("#C0C0C0")
	IronColor  = lipgloss.Color("#B0C4DE")
)

// Base styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 2)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(0, 1)

	// Border styles
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(1)

	// Menu styles
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 2)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	// Info panel styles
	InfoPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(1).
			Width(32)

	// Status bar style
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(DarkGray).
			Padding(0, 1)

	// Help styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true).
			Padding(1)

	// Grid styles (for chunk visualization)
	GridCellStyle = lipgloss.NewStyle().
			Width(2).
			Height(1).
			Align(lipgloss.Center)

	GridSelectedCellStyle = lipgloss.NewStyle().
				Width(2).
				Height(1).
				Align(lipgloss.Center).
				Background(PrimaryColor).
				Foreground(lipgloss.Color("#FAFAFA"))
)

// Tile and node symbols
const (
	TileSymbol   = "::"
	EmptySymbol  = "  "
	CursorSymbol = "><"

	HerbSymbol  = ",,"
	BerrySymbol = "%%"
	WoodSymbol  = "##"
	StoneSymbol = "[]"
	IronSymbol  = "Fe"
)

// GetClassColor returns the display color for a terrain class.
func GetClassColor(class terrain.Class) lipgloss.Color {
	switch class {
	case terrain.Water:
		return WaterColor
	case terrain.Sand:
		return SandColor
	case terrain.Grass:
		return GrassColor
	case terrain.Dirt:
		return DirtColor
	case terrain.Rock:
		return RockColor
	case terrain.Snow:
		return SnowColor
	default:
		return Gray
	}
}

// GetNodeSymbol returns the grid symbol for a resource node type.
func GetNodeSymbol(nodeType resource.NodeType) string {
	switch nodeType {
	case resource.HerbPatch:
		return HerbSymbol
	case resource.BerryBush:
		return BerrySymbol
	case resource.Tree:
		return WoodSymbol
	case resource.StoneDeposit:
		return StoneSymbol
	case resource.IronVein:
		return IronSymbol
	default:
		return EmptySymbol
	}
}

// GetNodeColor returns the display color for a resource node type.
func GetNodeColor(nodeType resource.NodeType) lipgloss.Color {
	switch nodeType {
	case resource.HerbPatch:
		return HerbColor
	case resource.BerryBush:
		return BerryColor
	case resource.Tree:
		return WoodColor
	case resource.StoneDeposit:
		return StoneColor
	case resource.IronVein:
		return IronColor
	default:
		return Gray
	}
}

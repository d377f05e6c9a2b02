// Command explorer is a terminal UI for inspecting generated terrain: chunk
// grids colored by class, per-tile height and walkability, resource nodes,
// and the session's tuning and cache statistics.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/terrain/cmd/explorer/models"
	"github.com/VoidMesh/terrain/internal/config"
	"github.com/VoidMesh/terrain/services/world"
)

func main() {
	seed := flag.Int64("seed", 0, "World seed (0 uses WORLD_SEED or the clock)")
	startView := flag.String("view", "menu", "Starting view (menu, terrain, overview)")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Setup logging
	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	// Setup file logging for debug
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg := config.Load()
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	w, err := world.New(cfg)
	if err != nil {
		log.Fatal("Failed to create world", "error", err)
	}

	app := models.NewApp(w, *startView)

	program := tea.NewProgram(app, tea.WithAltScreen())

	log.Info("Starting terrain explorer", "seed", w.Seed(), "start_view", *startView)

	if _, err := program.Run(); err != nil {
		log.Fatal("Error running terrain explorer", "error", err)
	}
}

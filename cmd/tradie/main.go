package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/takumibuilt/tradie/internal/config"
	"github.com/takumibuilt/tradie/internal/model"
	"github.com/takumibuilt/tradie/internal/ui"
)

func main() {
	var debug bool
	flag.BoolVar(&debug, "debug", false, "Write a debug log to tradie.log")
	flag.Parse()

	if debug {
		f, err := tea.LogToFile("tradie.log", "tradie")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}

	store := model.Seed()

	// Run the UI
	if err := ui.Run(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}

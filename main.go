package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "jaskdeck: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "jaskdeck: %v\n", err)
		os.Exit(1)
	}
}

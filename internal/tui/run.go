package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the outfit browser and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("outfit browser failed: %w", err)
	}
	return nil
}

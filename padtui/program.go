package padtui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/numpad/internal/logging"
)

// Run shows the form full screen with mouse support until the user quits,
// then closes it. The model keeps its final values for Values and Displays.
func Run(m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	p := tea.NewProgram(m, opts...)

	logging.Info("Starting form program")
	_, err := p.Run()
	m.Close()
	logging.Info("Form program exited")

	if err != nil {
		return fmt.Errorf("form program failed: %w", err)
	}
	return nil
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sligocki/bbc/internal/machine"
	"github.com/sligocki/bbc/internal/tape"
)

// Start runs the interactive step/rewind harness until the user quits.
func Start(conf tape.Configuration, m *machine.Machine, blocks []tape.Tape, speed uint8) error {
	program := tea.NewProgram(NewModel(conf, m, blocks, speed), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

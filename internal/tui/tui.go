package tui

import (
	"comptes-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func Run(client *api.Client, log zerolog.Logger) error {
	applyColorProfilePreference()
	m := newAppModel(client, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

package tui

import (
	"context"
	"time"

	"comptes-cli/internal/api"
	"comptes-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Network work runs inside tea.Cmd closures and resumes the update loop via
// typed messages. Requests are never canceled once issued; a late result is
// either applied or (for fetches) dropped by the seq guard.

const opTimeout = 30 * time.Second

func fetchComptesCmd(c *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		comptes, err := c.List(ctx)
		if err != nil {
			return comptesMsg{seq: seq, err: err.Error()}
		}
		return comptesMsg{seq: seq, comptes: comptes}
	}
}

func createCompteCmd(c *api.Client, draft model.Fields) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if _, err := c.Create(ctx, draft); err != nil {
			return createDoneMsg{err: err.Error()}
		}
		return createDoneMsg{}
	}
}

func saveCompteCmd(c *api.Client, id int64, fields model.Fields) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := c.Update(ctx, id, fields); err != nil {
			return saveDoneMsg{id: id, err: err.Error()}
		}
		return saveDoneMsg{id: id}
	}
}

func deleteCompteCmd(c *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := c.Delete(ctx, id); err != nil {
			return deleteDoneMsg{id: id, err: err.Error()}
		}
		return deleteDoneMsg{id: id}
	}
}

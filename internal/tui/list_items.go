package tui

import (
	"fmt"
	"strconv"

	"comptes-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type compteItem struct {
	compte model.Compte
}

func (i compteItem) FilterValue() string { return strconv.FormatInt(i.compte.ID, 10) }

func (i compteItem) Title() string {
	c := i.compte
	return fmt.Sprintf("%6d  %14s  %-10s  %s",
		c.ID,
		c.Solde.StringFixed(2),
		model.DateOnly(c.DateCreation),
		c.Type,
	)
}

func compteHeaderRow() string {
	return fmt.Sprintf("%6s  %14s  %-10s  %s", "ID", "Solde", "Date", "Type")
}

func newList() list.Model {
	l := list.New([]list.Item{}, newCompactItemDelegate(), 0, 0)
	// We render our own header/footer chrome; keep the list minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// No client-side filtering or sorting: the server's order is the order.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("account", "accounts")
	// The bubbles list quits on ESC by default; here ESC is "cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

package tui

import (
	"fmt"
	"strings"

	"comptes-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	switch m.modal {
	case modalCreate:
		return m.placeCentered(m.viewCreateModal())
	case modalEdit:
		return m.placeCentered(m.viewEditModal())
	case modalConfirmDelete:
		return m.placeCentered(m.viewConfirmDelete())
	}

	busy := ""
	if m.busy {
		busy = "  " + lipgloss.NewStyle().Foreground(colorWarn).Render("working…")
	}
	header := lipgloss.NewStyle().Bold(true).Render("Comptes") +
		"  " + styleMuted().Render(m.client.BaseURL()) + busy

	var body string
	if len(m.comptes) == 0 {
		body = styleMuted().Render("No accounts.")
	} else {
		body = styleMuted().Render(compteHeaderRow()) + "\n" + m.list.View()
	}

	help := styleMuted().Render("n: new  enter/e: edit  d: delete  r: refresh  q: quit")
	footer := help
	if m.minibufferText != "" {
		footer = lipgloss.NewStyle().Foreground(colorWarn).Render(m.minibufferText) + "\n" + help
	}

	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m *appModel) resizeList() {
	// Leave room for header/footer chrome.
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.list.SetSize(w, h)
}

func (m appModel) viewCreateModal() string {
	body := renderFieldsForm(
		m.create.solde, m.create.date, m.create.typ, m.create.focus,
		m.create.errText, m.create.submitting,
	)
	return renderModalBox(m.width, "New account", body)
}

func (m appModel) viewEditModal() string {
	if m.edit == nil {
		return ""
	}
	body := renderFieldsForm(
		m.edit.solde, m.edit.date, m.edit.typ, m.edit.focus,
		"", m.busy,
	)
	title := fmt.Sprintf("Edit account %d", m.edit.id)
	return renderModalBox(m.width, title, body)
}

func (m appModel) viewConfirmDelete() string {
	body := fmt.Sprintf("Delete account %d? This cannot be undone.", m.deleteForID)
	return renderConfirmModal(m.width, "Confirm delete", body, "Delete", "Cancel", m.confirmFocus)
}

func renderFieldsForm(solde, date textinput.Model, typ model.Type, focus fieldFocus, errText string, busy bool) string {
	label := func(s string, active bool) string {
		if active {
			return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(s)
		}
		return styleMuted().Render(s)
	}

	var typeOpts []string
	for _, t := range model.Types() {
		s := string(t)
		if t == typ {
			s = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Render(" " + s + " ")
		} else {
			s = styleMuted().Render(" " + s + " ")
		}
		typeOpts = append(typeOpts, s)
	}

	lines := []string{
		label("Solde", focus == focusSolde) + "  " + solde.View(),
		label("Date ", focus == focusDate) + "  " + date.View(),
		label("Type ", focus == focusType) + "  " + strings.Join(typeOpts, " "),
	}

	if errText != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(colorWarn).Render(errText))
	}
	status := "tab: next field   enter: save   esc: cancel"
	if busy {
		status = "working…"
	}
	lines = append(lines, "", styleMuted().Render(status))

	return strings.Join(lines, "\n")
}

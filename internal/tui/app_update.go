package tui

import (
	"comptes-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case comptesMsg:
		if msg.seq != m.fetchSeq {
			// A newer refresh is (or was) in flight; this result is stale.
			return m, nil
		}
		// The refresh settled: a busy flag held across a save's follow-up
		// refresh clears now, success or failure.
		m.busy = false
		if msg.err != "" {
			// Keep the previous collection; never overwrite with a partial
			// or empty result on failure.
			m.showMinibuffer("Refresh failed: " + msg.err)
			return m, nil
		}
		m.setComptes(msg.comptes)
		return m, nil

	case createDoneMsg:
		m.create.handleDone(msg)
		if msg.err != "" {
			// Draft preserved for retry; the form stays open.
			m.showMinibuffer("Create failed: " + msg.err)
			return m, nil
		}
		m.modal = modalNone
		m.createdSeq++
		m.showMinibuffer("Account created")
		return m, m.refresh()

	case saveDoneMsg:
		if msg.err != "" {
			m.busy = false
			// The session stays active so the user's edits are not lost.
			m.showMinibuffer("Update failed: " + msg.err)
			return m, nil
		}
		if m.edit != nil && m.edit.id == msg.id {
			m.edit = nil
			if m.modal == modalEdit {
				m.modal = modalNone
			}
		}
		m.showMinibuffer("Account updated")
		// busy stays set until the follow-up refresh settles.
		return m, m.refresh()

	case deleteDoneMsg:
		m.busy = false
		if msg.err != "" {
			m.showMinibuffer("Delete failed: " + msg.err)
			return m, nil
		}
		m.removeCompte(msg.id)
		if m.edit != nil && m.edit.id == msg.id {
			// The record under edit is gone; don't leave a dangling session.
			m.edit = nil
			if m.modal == modalEdit {
				m.modal = modalNone
			}
		}
		m.showMinibuffer("Account deleted")
		return m, nil

	case tea.KeyMsg:
		// Any keystroke dismisses the last notice.
		m.minibufferText = ""

		if m.modal != modalNone {
			return m.updateModal(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		case "n":
			m.modal = modalCreate
			m.create.setFocus(focusSolde)
			return m, nil
		case "enter", "e":
			if c, ok := m.selectedCompte(); ok {
				m.startEdit(c)
			}
			return m, nil
		case "d":
			if m.busy {
				return m, nil
			}
			if c, ok := m.selectedCompte(); ok {
				m.modal = modalConfirmDelete
				m.deleteForID = c.ID
				m.confirmFocus = confirmFocusCancel
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

// startEdit opens an edit session for the given record. An already-active
// session (for any row) is silently replaced.
func (m *appModel) startEdit(c model.Compte) {
	m.edit = newEditSession(c)
	m.modal = modalEdit
}

// cancelEdit discards the active session without touching the server.
func (m *appModel) cancelEdit() {
	m.edit = nil
	if m.modal == modalEdit {
		m.modal = modalNone
	}
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalCreate:
		return m.updateCreateModal(msg)
	case modalEdit:
		return m.updateEditModal(msg)
	case modalConfirmDelete:
		return m.updateConfirmModal(msg)
	}
	return m, nil
}

func (m appModel) updateCreateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		// Hide the form; the draft is kept for the next open.
		m.modal = modalNone
		return m, nil
	case "tab", "down":
		m.create.cycleFocus(false)
		return m, nil
	case "shift+tab", "up":
		m.create.cycleFocus(true)
		return m, nil
	case "enter", "ctrl+s":
		if m.create.submitting {
			return m, nil
		}
		draft, err := m.create.draft()
		if err != nil {
			m.create.errText = err.Error()
			return m, nil
		}
		m.create.errText = ""
		m.create.submitting = true
		return m, createCompteCmd(m.client, draft)
	case "left", "right", " ":
		if m.create.focus == focusType {
			m.create.toggleType()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.create.focus {
	case focusSolde:
		m.create.solde, cmd = m.create.solde.Update(msg)
	case focusDate:
		m.create.date, cmd = m.create.date.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateEditModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		m.modal = modalNone
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+g":
		m.cancelEdit()
		return m, nil
	case "tab", "down":
		m.edit.cycleFocus(false)
		return m, nil
	case "shift+tab", "up":
		m.edit.cycleFocus(true)
		return m, nil
	case "enter", "ctrl+s":
		if m.busy {
			return m, nil
		}
		fields, err := m.edit.fields()
		if err != nil {
			m.showMinibuffer(err.Error())
			return m, nil
		}
		m.busy = true
		return m, saveCompteCmd(m.client, m.edit.id, fields)
	case "left", "right", " ":
		if m.edit.focus == focusType {
			m.edit.toggleType()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.edit.focus {
	case focusSolde:
		m.edit.solde, cmd = m.edit.solde.Update(msg)
	case focusDate:
		m.edit.date, cmd = m.edit.date.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	decline := func() (tea.Model, tea.Cmd) {
		// Declined confirmations abort with no side effects and no notice.
		m.modal = modalNone
		m.deleteForID = 0
		return m, nil
	}
	confirm := func() (tea.Model, tea.Cmd) {
		id := m.deleteForID
		m.modal = modalNone
		m.deleteForID = 0
		m.busy = true
		return m, deleteCompteCmd(m.client, id)
	}

	switch msg.String() {
	case "esc", "ctrl+g", "n":
		return decline()
	case "y":
		return confirm()
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return confirm()
		}
		return decline()
	}
	return m, nil
}

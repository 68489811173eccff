package tui

import (
	"testing"
	"time"

	"comptes-cli/internal/api"
	"comptes-cli/internal/logging"
	"comptes-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestApp builds an app whose client points nowhere; tests drive the
// update loop with messages directly and never execute returned commands.
func newTestApp() appModel {
	c := api.New("http://127.0.0.1:1/banque", time.Second, logging.Nop())
	m := newAppModel(c, logging.Nop())
	m.width, m.height = 80, 24
	m.resizeList()
	return m
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	out, ok := mm.(appModel)
	if !ok {
		t.Fatalf("Update returned %T", mm)
	}
	return out, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func threeComptes() []model.Compte {
	return []model.Compte{
		compte(1, "100", "2024-01-01", model.TypeCourant),
		compte(2, "200", "2024-02-02", model.TypeEpargne),
		compte(3, "300", "2024-03-03", model.TypeCourant),
	}
}

func ids(comptes []model.Compte) []int64 {
	out := make([]int64, 0, len(comptes))
	for _, c := range comptes {
		out = append(out, c.ID)
	}
	return out
}

func TestStartEdit_ReplacesActiveSession(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())

	(&m).startEdit(m.comptes[0])
	m.edit.solde.SetValue("999999")

	(&m).startEdit(m.comptes[1])
	if m.edit.id != 2 {
		t.Fatalf("active session id = %d, want 2", m.edit.id)
	}
	// No trace of the first session's edits.
	if got := m.edit.solde.Value(); got != "200" {
		t.Fatalf("solde = %q, want the fresh seed 200", got)
	}
}

func TestCancelThenRestartEdit_SeedsFromRecordAgain(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())

	(&m).startEdit(m.comptes[0])
	m.edit.solde.SetValue("42")
	m.edit.date.SetValue("1999-09-09")
	(&m).cancelEdit()
	if m.edit != nil {
		t.Fatal("cancel must destroy the session")
	}
	if m.modal != modalNone {
		t.Fatal("cancel must close the edit modal")
	}

	(&m).startEdit(m.comptes[0])
	if got := m.edit.solde.Value(); got != "100" {
		t.Errorf("solde = %q, want original 100", got)
	}
	if got := m.edit.date.Value(); got != "2024-01-01" {
		t.Errorf("date = %q, want original 2024-01-01", got)
	}
}

func TestSaveFailure_PreservesSessionAndInput(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	(&m).startEdit(compte(7, "100", "2023-01-01", model.TypeCourant))
	m.edit.solde.SetValue("500")
	m.edit.date.SetValue("2024-01-01")
	m.edit.typ = model.TypeEpargne
	m.busy = true

	m, cmd := update(t, m, saveDoneMsg{id: 7, err: "connection refused"})
	if cmd != nil {
		t.Error("failed save must not trigger a refresh")
	}
	if m.busy {
		t.Error("busy flag must clear on failure")
	}
	if m.edit == nil || m.edit.id != 7 {
		t.Fatal("session must stay active after a failed save")
	}
	if m.edit.solde.Value() != "500" || m.edit.date.Value() != "2024-01-01" || m.edit.typ != model.TypeEpargne {
		t.Errorf("edits lost: solde=%q date=%q type=%q",
			m.edit.solde.Value(), m.edit.date.Value(), m.edit.typ)
	}
	if m.minibufferText == "" {
		t.Error("failure must surface a notice")
	}
}

func TestSaveSuccess_ClearsSessionThenRefreshSettles(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	(&m).startEdit(m.comptes[1])
	m.busy = true

	m, cmd := update(t, m, saveDoneMsg{id: 2})
	if m.edit != nil {
		t.Fatal("session must clear on successful save")
	}
	if m.modal != modalNone {
		t.Fatal("edit modal must close")
	}
	if cmd == nil {
		t.Fatal("successful save must trigger a refresh")
	}
	if !m.busy {
		t.Fatal("busy must hold until the refresh settles")
	}

	saved := threeComptes()
	saved[1] = compte(2, "500", "2024-01-01", model.TypeEpargne)
	m, _ = update(t, m, comptesMsg{seq: m.fetchSeq, comptes: saved})
	if m.busy {
		t.Error("busy must clear once the refresh settles")
	}
	got := m.comptes[1]
	if got.ID != 2 || got.DateCreation != "2024-01-01" || got.Type != model.TypeEpargne {
		t.Errorf("refreshed record = %+v", got)
	}
}

func TestRefreshFailure_KeepsPreviousCollection(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m.fetchSeq = 5

	m, _ = update(t, m, comptesMsg{seq: 5, err: "server down"})
	if len(m.comptes) != 3 {
		t.Fatalf("collection overwritten on failed refresh: %v", ids(m.comptes))
	}
	if m.minibufferText == "" {
		t.Error("failed refresh must surface a notice")
	}
}

func TestStaleFetchResponseDropped(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m.fetchSeq = 3
	m.busy = true

	stale := []model.Compte{compte(99, "1", "2020-01-01", model.TypeCourant)}
	m, _ = update(t, m, comptesMsg{seq: 2, comptes: stale})
	if len(m.comptes) != 3 {
		t.Fatal("stale fetch must not replace the collection")
	}
	if !m.busy {
		t.Error("stale fetch must not settle the pending refresh")
	}
}

func TestDelete_RemovesExactlyOneOrderPreserved(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m.busy = true

	m, cmd := update(t, m, deleteDoneMsg{id: 2})
	if cmd != nil {
		t.Error("delete success needs no refetch; removal is local")
	}
	if m.busy {
		t.Error("busy must clear")
	}
	got := ids(m.comptes)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("ids after delete = %v, want [1 3]", got)
	}
}

func TestDeleteFailure_KeepsCollection(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m.busy = true

	m, _ = update(t, m, deleteDoneMsg{id: 2, err: "boom"})
	if len(m.comptes) != 3 {
		t.Fatal("failed delete must leave the collection unchanged")
	}
	if m.minibufferText == "" {
		t.Error("failure must surface a notice")
	}
}

func TestDelete_ClearsMatchingEditSession(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	(&m).startEdit(m.comptes[1])

	m, _ = update(t, m, deleteDoneMsg{id: 2})
	if m.edit != nil {
		t.Error("deleting the record under edit must clear the session")
	}
	if m.modal != modalNone {
		t.Error("edit modal must close with the session")
	}
}

func TestDelete_LeavesOtherEditSessionAlone(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	(&m).startEdit(m.comptes[0])

	m, _ = update(t, m, deleteDoneMsg{id: 2})
	if m.edit == nil || m.edit.id != 1 {
		t.Error("deleting another record must not touch the session")
	}
}

func TestCreateSuccess_ResetsDraftAndSignalsExactlyOneRefresh(t *testing.T) {
	m := newTestApp()
	m.modal = modalCreate
	m.create.solde.SetValue("1500.50")
	m.create.date.SetValue("2024-03-15")
	m.create.typ = model.TypeEpargne
	m.create.submitting = true
	before := m.createdSeq

	m, cmd := update(t, m, createDoneMsg{})
	if cmd == nil {
		t.Fatal("creation must trigger a refresh")
	}
	if m.createdSeq != before+1 {
		t.Fatalf("createdSeq = %d, want exactly one signal", m.createdSeq-before)
	}
	if m.modal != modalNone {
		t.Error("create form must close on success")
	}
	// Draft reset to its empty default.
	if m.create.solde.Value() != "" || m.create.date.Value() != "" || m.create.typ != model.TypeCourant {
		t.Errorf("draft not reset: solde=%q date=%q type=%q",
			m.create.solde.Value(), m.create.date.Value(), m.create.typ)
	}
	if m.create.submitting {
		t.Error("submitting flag must clear")
	}
}

func TestCreateFailure_PreservesDraft(t *testing.T) {
	m := newTestApp()
	m.modal = modalCreate
	m.create.solde.SetValue("1500.50")
	m.create.date.SetValue("2024-03-15")
	m.create.typ = model.TypeEpargne
	m.create.submitting = true
	before := m.createdSeq

	m, cmd := update(t, m, createDoneMsg{err: "400 Bad Request"})
	if cmd != nil {
		t.Error("failed create must not trigger a refresh")
	}
	if m.createdSeq != before {
		t.Error("failed create must not signal")
	}
	if m.modal != modalCreate {
		t.Error("form stays open for retry")
	}
	if m.create.solde.Value() != "1500.50" || m.create.date.Value() != "2024-03-15" || m.create.typ != model.TypeEpargne {
		t.Error("draft must be preserved for retry")
	}
	if m.create.submitting {
		t.Error("submitting flag must clear so the user can resubmit")
	}
}

func TestBusyBlocksMutatingKeys(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m.busy = true

	// "d" must not open the delete confirmation while busy.
	m, _ = update(t, m, keyRune('d'))
	if m.modal != modalNone {
		t.Error("delete must be disabled while busy")
	}

	// Saving from the edit modal must be a no-op while busy.
	(&m).startEdit(m.comptes[0])
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("save must be disabled while busy")
	}
	if m.edit == nil {
		t.Error("blocked save must not clear the session")
	}
}

func TestConfirmDecline_NoSideEffectsNoNotice(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m, _ = update(t, m, keyRune('d'))
	if m.modal != modalConfirmDelete {
		t.Fatal("expected confirm modal")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("declined confirmation must issue no request")
	}
	if m.modal != modalNone || m.deleteForID != 0 {
		t.Error("declined confirmation must fully reset")
	}
	if m.busy {
		t.Error("declined confirmation must not set busy")
	}
	if m.minibufferText != "" {
		t.Error("declining is not an error; no notice")
	}
	if len(m.comptes) != 3 {
		t.Error("collection must be untouched")
	}
}

func TestConfirmAccept_IssuesDeleteAndSetsBusy(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m, _ = update(t, m, keyRune('d'))

	m, cmd := update(t, m, keyRune('y'))
	if cmd == nil {
		t.Fatal("confirmed delete must issue the request")
	}
	if !m.busy {
		t.Error("busy must be set while the delete is in flight")
	}
	if m.modal != modalNone {
		t.Error("confirm modal must close")
	}
	// Nothing removed yet; removal happens on deleteDoneMsg.
	if len(m.comptes) != 3 {
		t.Error("no optimistic removal before the server confirms")
	}
}

func TestLateSaveResultForUnknownSessionIsHarmless(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m.busy = true

	// Session was replaced before the old save resolved.
	(&m).startEdit(m.comptes[2])
	m, cmd := update(t, m, saveDoneMsg{id: 1})
	if cmd == nil {
		t.Fatal("save success still refreshes")
	}
	if m.edit == nil || m.edit.id != 3 {
		t.Error("an unrelated session must survive a late save result")
	}
}

func TestKeystrokesDismissNotice(t *testing.T) {
	m := newTestApp()
	m.setComptes(threeComptes())
	m.showMinibuffer("Account updated")

	m, _ = update(t, m, keyRune('j'))
	if m.minibufferText != "" {
		t.Error("notice must clear on the next keystroke")
	}
}

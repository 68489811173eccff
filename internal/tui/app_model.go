package tui

import (
	"comptes-cli/internal/api"
	"comptes-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type appModel struct {
	client *api.Client
	log    zerolog.Logger

	width  int
	height int

	// comptes is the authoritative local copy of the collection, in server
	// order. It is only ever replaced wholesale by a refresh, or shrunk by a
	// confirmed delete.
	comptes []model.Compte
	list    list.Model

	// create owns the single draft record.
	create createModel

	// edit is the exclusive edit session; nil means no row is being edited.
	edit *editSession

	modal        modalKind
	confirmFocus confirmModalFocus
	deleteForID  int64

	// busy is set while a mutating request (save/delete) is in flight and
	// disables further mutating actions. After a successful save it stays
	// set until the follow-up refresh settles.
	busy bool

	// fetchSeq identifies the most recent refresh; older responses are dropped.
	fetchSeq int

	// createdSeq counts creation signals from the create form. Each
	// increment triggers a refresh.
	createdSeq int

	minibufferText string
}

func newAppModel(client *api.Client, log zerolog.Logger) appModel {
	m := appModel{
		client: client,
		log:    log,
	}
	m.list = newList()
	m.create = newCreateModel()
	return m
}

func (m appModel) Init() tea.Cmd {
	// The initial fetch carries the model's current seq; Init cannot bump the
	// counter on the program's copy.
	return fetchComptesCmd(m.client, m.fetchSeq)
}

// refresh starts a wholesale re-fetch of the collection. The previous
// collection stays in place until (and unless) the fetch succeeds.
func (m *appModel) refresh() tea.Cmd {
	m.fetchSeq++
	return fetchComptesCmd(m.client, m.fetchSeq)
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
}

// setComptes replaces the collection and rebuilds the list rows, keeping the
// selection on the same record when it still exists.
func (m *appModel) setComptes(comptes []model.Compte) {
	var curID int64
	if it, ok := m.list.SelectedItem().(compteItem); ok {
		curID = it.compte.ID
	}
	m.comptes = comptes

	items := make([]list.Item, 0, len(comptes))
	for _, c := range comptes {
		items = append(items, compteItem{compte: c})
	}
	m.list.SetItems(items)
	if curID != 0 {
		selectCompteByID(&m.list, curID)
	}
}

// removeCompte drops the record with the given id from the local collection,
// preserving the order of the rest. No refetch: the server state for that id
// is gone.
func (m *appModel) removeCompte(id int64) {
	kept := m.comptes[:0]
	for _, c := range m.comptes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.setComptes(kept)
}

func (m *appModel) selectedCompte() (model.Compte, bool) {
	it, ok := m.list.SelectedItem().(compteItem)
	if !ok {
		return model.Compte{}, false
	}
	return it.compte, true
}

func selectCompteByID(l *list.Model, id int64) {
	for i, it := range l.Items() {
		if c, ok := it.(compteItem); ok && c.compte.ID == id {
			l.Select(i)
			return
		}
	}
}

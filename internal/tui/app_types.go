package tui

import "comptes-cli/internal/model"

type modalKind int

const (
	modalNone modalKind = iota
	modalCreate
	modalEdit
	modalConfirmDelete
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// comptesMsg resolves a collection fetch. seq guards against a stale
// response overwriting a newer one (an older fetch can resolve late).
type comptesMsg struct {
	seq     int
	comptes []model.Compte
	err     string
}

// createDoneMsg resolves a draft submission. An empty err is the
// "creation succeeded" signal that triggers a list refresh.
type createDoneMsg struct {
	err string
}

type saveDoneMsg struct {
	id  int64
	err string
}

type deleteDoneMsg struct {
	id  int64
	err string
}

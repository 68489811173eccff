package tui

import (
	"fmt"
	"strings"

	"comptes-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"
)

// createModel owns the single draft record pending creation. The draft is
// reset only after a successful submit; failures preserve the user's input
// for retry.
type createModel struct {
	solde textinput.Model
	date  textinput.Model
	typ   model.Type
	focus fieldFocus

	// submitting blocks a second submit while one is in flight.
	submitting bool
	errText    string
}

func newCreateModel() createModel {
	m := createModel{}
	m.solde = newFieldInput("Solde", 20)
	m.date = newFieldInput("YYYY-MM-DD", 10)
	m.reset()
	return m
}

// reset replaces the draft with its empty default. Type defaults to COURANT
// so an unset enumeration is never submitted.
func (m *createModel) reset() {
	m.solde.SetValue("")
	m.date.SetValue("")
	m.typ = model.TypeCourant
	m.errText = ""
	m.submitting = false
	m.setFocus(focusSolde)
}

func (m *createModel) setFocus(f fieldFocus) {
	m.focus = f
	m.solde.Blur()
	m.date.Blur()
	switch f {
	case focusSolde:
		m.solde.Focus()
	case focusDate:
		m.date.Focus()
	}
}

func (m *createModel) cycleFocus(back bool) {
	if back {
		m.setFocus((m.focus + fieldFocusCount - 1) % fieldFocusCount)
		return
	}
	m.setFocus((m.focus + 1) % fieldFocusCount)
}

func (m *createModel) toggleType() {
	if m.typ == model.TypeCourant {
		m.typ = model.TypeEpargne
	} else {
		m.typ = model.TypeCourant
	}
}

// draft coerces the form inputs into the create request body.
func (m *createModel) draft() (model.Fields, error) {
	raw := strings.TrimSpace(m.solde.Value())
	if raw == "" {
		return model.Fields{}, fmt.Errorf("solde is required")
	}
	solde, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Fields{}, fmt.Errorf("solde must be a number: %q", raw)
	}
	f := model.Fields{
		Solde:        solde,
		DateCreation: model.DateOnly(m.date.Value()),
		Type:         m.typ,
	}
	if err := f.Validate(); err != nil {
		return model.Fields{}, err
	}
	return f, nil
}

// handleDone applies a submit result. Success resets the draft; failure
// keeps it so the user can fix and resubmit.
func (m *createModel) handleDone(msg createDoneMsg) {
	m.submitting = false
	if msg.err != "" {
		m.errText = msg.err
		return
	}
	m.reset()
}

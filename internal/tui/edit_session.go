package tui

import (
	"fmt"
	"strings"

	"comptes-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"
)

// editSession is the single in-progress modification of one record. At most
// one exists at a time; starting an edit on another row silently replaces
// the current session, unsaved changes included. Field values are
// independent of the collection until a save succeeds; cancel discards them
// entirely.
type editSession struct {
	id int64

	solde textinput.Model
	date  textinput.Model
	typ   model.Type
	focus fieldFocus
}

type fieldFocus int

const (
	focusSolde fieldFocus = iota
	focusDate
	focusType

	fieldFocusCount
)

// newEditSession seeds a session from the record's current values, with the
// creation date normalized to its date-only prefix.
func newEditSession(c model.Compte) *editSession {
	s := &editSession{id: c.ID, typ: c.Type}

	s.solde = newFieldInput("Solde", 20)
	s.solde.SetValue(c.Solde.String())
	s.date = newFieldInput("YYYY-MM-DD", 10)
	s.date.SetValue(model.DateOnly(c.DateCreation))

	s.setFocus(focusSolde)
	return s
}

func newFieldInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 16
	return in
}

func (s *editSession) setFocus(f fieldFocus) {
	s.focus = f
	s.solde.Blur()
	s.date.Blur()
	switch f {
	case focusSolde:
		s.solde.Focus()
	case focusDate:
		s.date.Focus()
	}
}

func (s *editSession) cycleFocus(back bool) {
	if back {
		s.setFocus((s.focus + fieldFocusCount - 1) % fieldFocusCount)
		return
	}
	s.setFocus((s.focus + 1) % fieldFocusCount)
}

func (s *editSession) toggleType() {
	if s.typ == model.TypeCourant {
		s.typ = model.TypeEpargne
	} else {
		s.typ = model.TypeCourant
	}
}

// fields coerces the session's inputs into the update request body.
func (s *editSession) fields() (model.Fields, error) {
	raw := strings.TrimSpace(s.solde.Value())
	if raw == "" {
		return model.Fields{}, fmt.Errorf("solde is required")
	}
	solde, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Fields{}, fmt.Errorf("solde must be a number: %q", raw)
	}
	f := model.Fields{
		Solde:        solde,
		DateCreation: model.DateOnly(s.date.Value()),
		Type:         s.typ,
	}
	if err := f.Validate(); err != nil {
		return model.Fields{}, err
	}
	return f, nil
}

package tui

import (
	"testing"

	"comptes-cli/internal/model"

	"github.com/shopspring/decimal"
)

func compte(id int64, solde, date string, typ model.Type) model.Compte {
	return model.Compte{
		ID:           id,
		Solde:        decimal.RequireFromString(solde),
		DateCreation: date,
		Type:         typ,
	}
}

func TestNewEditSession_SeedsFromRecord(t *testing.T) {
	s := newEditSession(compte(7, "1500.5", "2024-03-15", model.TypeCourant))
	if s.id != 7 {
		t.Errorf("id = %d", s.id)
	}
	if got := s.solde.Value(); got != "1500.5" {
		t.Errorf("solde = %q", got)
	}
	if got := s.date.Value(); got != "2024-03-15" {
		t.Errorf("date = %q", got)
	}
	if s.typ != model.TypeCourant {
		t.Errorf("type = %q", s.typ)
	}
}

func TestNewEditSession_TruncatesServerTimestamp(t *testing.T) {
	s := newEditSession(compte(1, "100", "2024-03-15T00:00:00Z", model.TypeEpargne))
	if got := s.date.Value(); got != "2024-03-15" {
		t.Errorf("date = %q, want 2024-03-15", got)
	}
}

func TestEditSessionFields_CoercesInputs(t *testing.T) {
	s := newEditSession(compte(7, "100", "2024-01-01", model.TypeCourant))
	s.solde.SetValue("500")
	s.toggleType()

	f, err := s.fields()
	if err != nil {
		t.Fatal(err)
	}
	if !f.Solde.Equal(decimal.NewFromInt(500)) {
		t.Errorf("solde = %s", f.Solde)
	}
	if f.DateCreation != "2024-01-01" {
		t.Errorf("date = %q", f.DateCreation)
	}
	if f.Type != model.TypeEpargne {
		t.Errorf("type = %q", f.Type)
	}
}

func TestEditSessionFields_RejectsBadInput(t *testing.T) {
	s := newEditSession(compte(7, "100", "2024-01-01", model.TypeCourant))
	s.solde.SetValue("")
	if _, err := s.fields(); err == nil {
		t.Error("expected error for empty solde")
	}

	s = newEditSession(compte(7, "100", "2024-01-01", model.TypeCourant))
	s.solde.SetValue("abc")
	if _, err := s.fields(); err == nil {
		t.Error("expected error for non-numeric solde")
	}

	s = newEditSession(compte(7, "100", "", model.TypeCourant))
	if _, err := s.fields(); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestToggleTypeRoundTrips(t *testing.T) {
	s := newEditSession(compte(1, "1", "2024-01-01", model.TypeCourant))
	s.toggleType()
	if s.typ != model.TypeEpargne {
		t.Fatalf("type = %q", s.typ)
	}
	s.toggleType()
	if s.typ != model.TypeCourant {
		t.Fatalf("type = %q", s.typ)
	}
}

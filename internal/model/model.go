package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend expects `solde` as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

type Type string

const (
	TypeCourant Type = "COURANT"
	TypeEpargne Type = "EPARGNE"
)

// Types lists the account types in display order.
func Types() []Type {
	return []Type{TypeCourant, TypeEpargne}
}

func ParseType(s string) (Type, error) {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeCourant:
		return TypeCourant, nil
	case TypeEpargne:
		return TypeEpargne, nil
	default:
		return "", fmt.Errorf("unknown account type: %q (want COURANT or EPARGNE)", s)
	}
}

// Compte is a server-owned account record. The server assigns the id;
// it is immutable once created.
type Compte struct {
	ID           int64           `json:"id"`
	Solde        decimal.Decimal `json:"solde"`
	DateCreation string          `json:"dateCreation"`
	Type         Type            `json:"type"`
}

// Fields is the editable subset of a Compte. It is the body of both the
// create request (a draft has no id yet) and the update request (full field
// replacement, not a partial patch).
type Fields struct {
	Solde        decimal.Decimal `json:"solde"`
	DateCreation string          `json:"dateCreation"`
	Type         Type            `json:"type"`
}

// Validate checks required-field presence and basic shape. Anything beyond
// that is the server's call.
func (f Fields) Validate() error {
	if strings.TrimSpace(f.DateCreation) == "" {
		return fmt.Errorf("dateCreation is required")
	}
	if !isDate(DateOnly(f.DateCreation)) {
		return fmt.Errorf("dateCreation must be YYYY-MM-DD, got %q", f.DateCreation)
	}
	if _, err := ParseType(string(f.Type)); err != nil {
		return err
	}
	return nil
}

// DateOnly truncates a server-provided date or timestamp to its YYYY-MM-DD
// prefix. The backend sometimes returns full timestamps
// ("2024-03-15T00:00:00Z"); the client only ever shows or edits the date.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func isDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

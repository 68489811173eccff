package cli

import (
	"bufio"
	"fmt"
	"strings"

	"comptes-cli/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			comptes, err := cliClient(app).List(cmd.Context())
			if err != nil {
				return err
			}
			if comptes == nil {
				comptes = []model.Compte{}
			}
			return writeOut(cmd, app, map[string]any{"data": comptes})
		},
	}
}

// fieldFlags declares the shared --solde/--date/--type flags for create and
// update and coerces them into a request body.
type fieldFlags struct {
	solde string
	date  string
	typ   string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.solde, "solde", "", "Balance (decimal)")
	cmd.Flags().StringVar(&f.date, "date", "", "Creation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.typ, "type", string(model.TypeCourant), "Account type (COURANT|EPARGNE)")
	_ = cmd.MarkFlagRequired("solde")
	_ = cmd.MarkFlagRequired("date")
}

func (f *fieldFlags) fields() (model.Fields, error) {
	solde, err := decimal.NewFromString(strings.TrimSpace(f.solde))
	if err != nil {
		return model.Fields{}, fmt.Errorf("--solde must be a number: %q", f.solde)
	}
	typ, err := model.ParseType(f.typ)
	if err != nil {
		return model.Fields{}, err
	}
	fields := model.Fields{
		Solde:        solde,
		DateCreation: model.DateOnly(f.date),
		Type:         typ,
	}
	if err := fields.Validate(); err != nil {
		return model.Fields{}, err
	}
	return fields, nil
}

func newCreateCmd(app *App) *cobra.Command {
	var flags fieldFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := flags.fields()
			if err != nil {
				return err
			}
			created, err := cliClient(app).Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": created})
		},
	}
	flags.register(cmd)
	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	var flags fieldFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an account's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fields, err := flags.fields()
			if err != nil {
				return err
			}
			if err := cliClient(app).Update(cmd.Context(), id, fields); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"id":           id,
				"solde":        fields.Solde,
				"dateCreation": fields.DateCreation,
				"type":         fields.Type,
			}})
		},
	}
	flags.register(cmd)
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes && !confirmOnTerminal(cmd, fmt.Sprintf("Delete account %d? This cannot be undone. [y/N] ", id)) {
				// Declined: no request, no output, exit clean.
				return nil
			}
			if err := cliClient(app).Delete(cmd.Context(), id); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": id, "deleted": true}})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func confirmOnTerminal(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

package cli

import (
	"os"
	"strings"
	"time"

	"comptes-cli/internal/api"
	"comptes-cli/internal/config"
	"comptes-cli/internal/format"
	"comptes-cli/internal/logging"
	"comptes-cli/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type App struct {
	APIURL  string
	Pretty  bool
	Timeout time.Duration

	// LogPath is where the TUI writes its log (it owns the terminal).
	LogPath string
}

func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	app := &App{LogPath: cfg.LogPath}

	cmd := &cobra.Command{
		Use:          "comptes",
		Short:        "Bank accounts client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  comptes

  # Scriptable commands
  comptes list
  comptes create --solde 1500.50 --date 2024-03-15 --type COURANT
  comptes update 7 --solde 500 --date 2024-01-01 --type EPARGNE
  comptes delete 7 --yes
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api-url", cfg.BaseURL, "Endpoint root (default from COMPTES_API_URL)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", cfg.Timeout, "Per-request timeout")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newCreateCmd(app))
	cmd.AddCommand(newUpdateCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	log := logging.Nop()
	if app.LogPath != "" {
		l, closer, err := logging.OpenFile(app.LogPath)
		if err != nil {
			return err
		}
		defer closer.Close()
		log = l
	}
	return tui.Run(app.newClient(log), log)
}

func (app *App) newClient(log zerolog.Logger) *api.Client {
	return api.New(config.NormalizeBaseURL(app.APIURL), app.Timeout, log)
}

// cliClient logs request failures to stderr; routine request chatter is
// suppressed so command output stays clean.
func cliClient(app *App) *api.Client {
	return app.newClient(logging.NewConsole(os.Stderr).Level(zerolog.WarnLevel))
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Pretty)
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/adapter"
	"github.com/mmcdole/shelf/internal/adapter/api"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/i18n"
	"github.com/mmcdole/shelf/internal/service"
	"github.com/mmcdole/shelf/internal/session"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/mmcdole/shelf/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by every command
type options struct {
	configFile string
	envFile    string
	v          *viper.Viper
}

// load reads .env, then the config file and SHELF_* environment, with
// bound flags taking precedence
func (o *options) load() (*adapter.Config, error) {
	if err := adapter.LoadDotEnv(o.envFile); err != nil {
		return nil, err
	}
	cfg, err := adapter.LoadConfigWith(o.v, o.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	i18n.Init(cfg.UI.Language)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "shelf",
		Short:         "Terminal client for the book catalog API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	cmd.SetVersionTemplate("shelf {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default "+adapter.DefaultConfigFile()+")")
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the config")
	pf.String("server", "", "catalog API base URL")
	pf.String("lang", "", "UI language (en, de)")
	_ = opts.v.BindPFlag("server.url", pf.Lookup("server"))
	_ = opts.v.BindPFlag("ui.language", pf.Lookup("lang"))

	cmd.AddCommand(newHistoryCmd(opts), newConfigCmd(opts))
	return cmd
}

func runTUI(opts *options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("shelf needs an interactive terminal; use 'shelf history' for non-interactive output")
	}

	cfg, err := opts.load()
	if err != nil {
		return err
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting shelf", "version", Version, "server", cfg.Server.URL)

	journal := openJournal(cfg, logger)
	defer journal.Close()

	st, err := session.New()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	client := api.NewClient(api.Config{
		BaseURL:     cfg.Server.URL,
		TokenHeader: cfg.Server.TokenHeader,
		UserAgent:   "shelf/" + Version,
	}, st, logger)

	accountSvc := service.NewAccountService(client, journal, logger)
	catalogSvc := service.NewCatalogService(client, journal, logger)

	model := tui.NewModel(st, accountSvc, catalogSvc, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// openJournal opens the configured journal. The TUI keeps working without
// one, so failures only disable recording.
func openJournal(cfg *adapter.Config, logger *slog.Logger) domain.Journal {
	if !cfg.Journal.Enabled {
		return domain.NopJournal{}
	}
	j, err := store.NewJournal(cfg.Journal.Path)
	if err != nil {
		logger.Warn("journal unavailable, activity will not be recorded", "path", cfg.Journal.Path, "error", err)
		return domain.NopJournal{}
	}
	return j
}

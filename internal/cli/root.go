// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles global flags and builds the journal services for subcommands
package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harper/dreamdecoder/internal/analyzer"
	"github.com/harper/dreamdecoder/internal/charm"
	"github.com/harper/dreamdecoder/internal/config"
	"github.com/harper/dreamdecoder/internal/insights"
	"github.com/harper/dreamdecoder/internal/journal"
	"github.com/harper/dreamdecoder/internal/lexicon"
	"github.com/harper/dreamdecoder/internal/logging"
	"github.com/harper/dreamdecoder/internal/symbols"
)

const (
	unknownValue = "unknown"
)

var (
	configPath string
	dataDir    string
	userID     string
)

var rootCmd = &cobra.Command{
	Use:   "dreamdecoder",
	Short: "Dream journal with analysis",
	Long: `Dreamdecoder records dreams in a CSV journal, detects their type, sentiment and symbols,
and offers reflections, timelines, dream DNA and more over the CLI, HTTP or MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: project .dreamdecoder or user config)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the journal files")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", defaultUser(), "User the dreams belong to")
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return unknownValue
}

// loadLemmatizer reads the English dictionary once per process.
var loadLemmatizer = sync.OnceValues(analyzer.NewEnglishLemmatizer)

// app holds the services a command works with.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	analyzer *analyzer.Analyzer
	journal  *journal.Store
	guide    *symbols.Guide
	insights *insights.Service
}

// newApp loads configuration and opens the journal and symbol guide.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	log.Logger = logger

	opts := []analyzer.Option{
		analyzer.WithScorer(analyzer.NewVaderScorer()),
		analyzer.WithLogger(logger),
	}
	if lem, err := loadLemmatizer(); err != nil {
		logger.Warn().Err(err).Msg("lemmatizer unavailable, matching exact words only")
	} else {
		opts = append(opts, analyzer.WithLemmatizer(lem))
	}
	lex := lexicon.Default()
	a := analyzer.New(lex, opts...)

	repo := journal.NewCSVRepository(cfg.JournalPath(), logger)
	if err := repo.Init(); err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	store := journal.NewStore(repo, a, journal.WithLogger(logger))

	guide := symbols.NewGuide(cfg.SymbolGuidePath(), store, logger)
	if err := guide.Init(); err != nil {
		return nil, fmt.Errorf("failed to open symbol guide: %w", err)
	}
	if n, err := guide.Seed(lex.Symbols()); err != nil {
		logger.Warn().Err(err).Msg("failed to seed symbol guide")
	} else if n > 0 {
		logger.Debug().Int("symbols", n).Msg("seeded symbol guide")
	}

	return &app{
		cfg:      cfg,
		log:      logger,
		analyzer: a,
		journal:  store,
		guide:    guide,
		insights: insights.NewService(store, a, insights.WithLogger(logger)),
	}, nil
}

// afterWrite pushes the data files when auto_sync is enabled. Sync failures
// never fail the command that changed the journal.
func (a *app) afterWrite() {
	if !a.cfg.AutoSync {
		return
	}
	c, err := charm.NewClient(a.cfg.CharmHost)
	if err != nil {
		a.log.Warn().Err(err).Msg("auto sync skipped")
		return
	}
	if _, err := charm.NewBackup(c, a.log).Push(a.cfg.JournalPath(), a.cfg.SymbolGuidePath()); err != nil {
		a.log.Warn().Err(err).Msg("auto sync failed")
	}
}

// Package main provides the CLI entrypoint for concentration.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/concentration/internal/config"
	"github.com/verte-zerg/concentration/internal/deck"
	"github.com/verte-zerg/concentration/internal/model"
	"github.com/verte-zerg/concentration/internal/stats"
	"github.com/verte-zerg/concentration/internal/statsui"
	"github.com/verte-zerg/concentration/internal/store"
	"github.com/verte-zerg/concentration/internal/tui"
)

const (
	defaultPairs        = 8
	defaultColumns      = 4
	defaultFaceUpTime   = 0
	defaultFaceDownTime = 1000
	defaultPauseTime    = 500
	defaultBack         = "?"
)

var (
	playDeck         string
	playDeckFile     string
	playFronts       []string
	playFrontsFile   string
	playBack         string
	playPairs        int
	playColumns      int
	playFaceUpTime   int
	playFaceDownTime int
	playPauseTime    int
	playLogFile      string

	historyDeck  string
	historySince string
	historyLast  int
	historyPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "concentration",
		Short:         "Terminal memory-matching card game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playDeck, "deck", deck.DefaultSet, "front set name (see: concentration decks)")
	rootCmd.Flags().StringVar(&playDeckFile, "deck-file", config.DefaultDeckFilePath(), "YAML file with extra front sets")
	rootCmd.Flags().StringSliceVar(&playFronts, "fronts", nil, "explicit card fronts, overrides --deck")
	rootCmd.Flags().StringVar(&playFrontsFile, "fronts-file", "", "file with one card front per line, overrides --deck")
	rootCmd.Flags().StringVar(&playBack, "back", "", "card back label (default: the deck's back)")
	rootCmd.Flags().IntVar(&playPairs, "pairs", defaultPairs, "number of pairs")
	rootCmd.Flags().IntVar(&playColumns, "columns", defaultColumns, "number of columns in the grid")
	rootCmd.Flags().IntVar(&playFaceUpTime, "face-up-time", defaultFaceUpTime, "time to turn a card face up (ms)")
	rootCmd.Flags().IntVar(&playFaceDownTime, "face-down-time", defaultFaceDownTime, "time to turn a card face down (ms)")
	rootCmd.Flags().IntVar(&playPauseTime, "pause-time", defaultPauseTime, "pause before reverting a mismatch (ms)")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", "", "write engine debug log to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDecksCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	gameCfg := fileCfg.Game
	applyStringConfig(cmd, "deck", &playDeck, gameCfg.Deck)
	applyStringConfig(cmd, "deck-file", &playDeckFile, gameCfg.DeckFile)
	applySliceConfig(cmd, "fronts", &playFronts, gameCfg.Fronts)
	applyStringConfig(cmd, "fronts-file", &playFrontsFile, gameCfg.FrontsFile)
	applyStringConfig(cmd, "back", &playBack, gameCfg.Back)
	applyIntConfig(cmd, "pairs", &playPairs, gameCfg.Pairs)
	applyIntConfig(cmd, "columns", &playColumns, gameCfg.Columns)
	applyIntConfig(cmd, "face-up-time", &playFaceUpTime, gameCfg.FaceUpTime)
	applyIntConfig(cmd, "face-down-time", &playFaceDownTime, gameCfg.FaceDownTime)
	applyIntConfig(cmd, "pause-time", &playPauseTime, gameCfg.PauseTime)
	applyStringConfig(cmd, "log-file", &playLogFile, gameCfg.LogFile)

	cfg, err := resolveGameConfig()
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(playLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	m, err := tui.NewModel(cfg, st, deck.New(), logger)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveGameConfig picks fronts and back from explicit fronts, a fronts
// file or a named set, in that order of precedence.
func resolveGameConfig() (model.Config, error) {
	cfg := model.Config{
		Deck:         playDeck,
		Back:         playBack,
		Pairs:        playPairs,
		Columns:      playColumns,
		FaceUpTime:   time.Duration(playFaceUpTime) * time.Millisecond,
		FaceDownTime: time.Duration(playFaceDownTime) * time.Millisecond,
		PauseTime:    time.Duration(playPauseTime) * time.Millisecond,
	}
	if playFaceUpTime < 0 || playFaceDownTime < 0 || playPauseTime < 0 {
		return model.Config{}, fmt.Errorf("--face-up-time, --face-down-time and --pause-time must be >= 0")
	}

	switch {
	case len(playFronts) > 0:
		cfg.Deck = "custom"
		cfg.Fronts = playFronts
	case playFrontsFile != "":
		fronts, err := deck.LoadFronts(playFrontsFile)
		if err != nil {
			return model.Config{}, fmt.Errorf("failed to load fronts: %w", err)
		}
		cfg.Deck = strings.TrimSuffix(filepath.Base(playFrontsFile), filepath.Ext(playFrontsFile))
		cfg.Fronts = fronts
	default:
		catalog, err := deck.Catalog(playDeckFile)
		if err != nil {
			return model.Config{}, fmt.Errorf("failed to load deck file: %w", err)
		}
		set, ok := catalog[playDeck]
		if !ok {
			return model.Config{}, fmt.Errorf("unknown deck %q (available: %s)", playDeck, strings.Join(deck.Names(catalog), ", "))
		}
		cfg.Fronts = set.Fronts
		if cfg.Back == "" {
			cfg.Back = set.Back
		}
	}
	if cfg.Back == "" {
		cfg.Back = defaultBack
	}
	cfg.Fronts = deck.NormalizeFronts(cfg.Fronts)
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if len(cfg.Fronts) == 0 {
		return fmt.Errorf("no card fronts configured: %w", deck.ErrNoFronts)
	}
	if cfg.Pairs <= 0 {
		return fmt.Errorf("--pairs must be > 0")
	}
	if cfg.Columns <= 0 {
		return fmt.Errorf("--columns must be > 0")
	}
	if strings.TrimSpace(cfg.Back) == "" {
		return fmt.Errorf("--back must not be empty")
	}
	if effective := deck.EffectivePairs(len(cfg.Fronts), cfg.Pairs); effective < cfg.Pairs {
		logErrf("deck %q has %d fronts; playing %d pairs\n", cfg.Deck, len(cfg.Fronts), effective)
	}
	return nil
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newDecksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List available front sets",
		Args:  cobra.NoArgs,
		RunE:  runDecksCmd,
	}
	cmd.Flags().StringVar(&playDeckFile, "deck-file", config.DefaultDeckFilePath(), "YAML file with extra front sets")
	return cmd
}

func runDecksCmd(cmd *cobra.Command, _ []string) error {
	catalog, err := deck.Catalog(playDeckFile)
	if err != nil {
		return fmt.Errorf("failed to load deck file: %w", err)
	}
	for _, name := range deck.Names(catalog) {
		set := catalog[name]
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %3d fronts  back %s\n", name, len(set.Fronts), set.Back); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show solved games",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyDeck, "deck", "", "deck filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N games")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a plain table instead of the browser")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	cfg := model.HistoryConfig{
		Deck:  historyDeck,
		Since: sinceTime,
		Last:  historyLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if historyPlain || !isTerminal(os.Stdout) {
		report, err := stats.BuildReport(context.Background(), st, cfg)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		return stats.WriteTable(cmd.OutOrStdout(), report, time.Now())
	}

	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applySliceConfig(cmd *cobra.Command, name string, target *[]string, value []string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# concentration configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# deck = %q              # Front set name (see: concentration decks)
# deck-file = %q         # YAML file with extra front sets
# fronts = ["A", "B"]     # Explicit card fronts; overrides deck
# fronts-file = ""        # One card front per line; overrides deck
# back = %q               # Card back label
# pairs = %d              # Number of pairs
# columns = %d            # Number of columns in the grid
# face-up-time = %d       # Time to turn a card face up (ms)
# face-down-time = %d     # Time to turn a card face down (ms)
# pause-time = %d         # Pause before reverting a mismatch (ms)
# log-file = %q           # Engine debug log
`,
		deck.DefaultSet,
		config.DefaultDeckFilePath(),
		defaultBack,
		defaultPairs,
		defaultColumns,
		defaultFaceUpTime,
		defaultFaceDownTime,
		defaultPauseTime,
		config.DefaultLogPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Package main provides the CLI entrypoint for swifttype.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/swifttype/internal/config"
	"github.com/verte-zerg/swifttype/internal/generator"
	"github.com/verte-zerg/swifttype/internal/model"
	"github.com/verte-zerg/swifttype/internal/stats"
	"github.com/verte-zerg/swifttype/internal/statsui"
	"github.com/verte-zerg/swifttype/internal/store"
	"github.com/verte-zerg/swifttype/internal/texts"
	"github.com/verte-zerg/swifttype/internal/tui"
)

const (
	defaultLang        = model.English
	defaultMode        = model.Sentence
	defaultDuration    = 60
	defaultWeakTop     = 8
	defaultWeakFactor  = 2.0
	defaultWeakWindow  = 20
	defaultCurveWindow = 20
	historyLimit       = 20
	defaultReportWidth = 60
	packFileName       = "pack.yaml"
)

var (
	practiceLang       string
	practiceMode       string
	practiceDuration   string
	practiceTextsDir   string
	practiceFocusWeak  bool
	practiceWeakTop    int
	practiceWeakFactor float64
	practiceWeakWindow int

	statsLang        string
	statsMode        string
	statsSince       string
	statsLast        int
	statsCurveWindow int

	textsDir string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "swifttype",
		Short:         "Timed typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", string(defaultLang), "text language (english|bengali)")
	rootCmd.Flags().StringVar(&practiceMode, "mode", string(defaultMode), "text mode (sentence|paragraph)")
	rootCmd.Flags().StringVar(&practiceDuration, "duration", strconv.Itoa(defaultDuration), "test duration in seconds (15|30|60|120)")
	rootCmd.Flags().StringVar(&practiceTextsDir, "texts-dir", config.DefaultTextsDir(), "directory with custom text pools")
	rootCmd.Flags().BoolVar(&practiceFocusWeak, "focus-weak", false, "prefer texts with weak characters")
	rootCmd.Flags().IntVar(&practiceWeakTop, "weak-top", defaultWeakTop, "number of weak characters to focus on")
	rootCmd.Flags().Float64Var(&practiceWeakFactor, "weak-factor", defaultWeakFactor, "weight factor per weak character")
	rootCmd.Flags().IntVar(&practiceWeakWindow, "weak-window", defaultWeakWindow, "number of recent sessions to compute weak chars")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTextsCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	if d := fileCfg.Practice.Duration; d != nil {
		duration := strconv.Itoa(*d)
		applyStringConfig(cmd, "duration", &practiceDuration, &duration)
	}
	applyStringConfig(cmd, "texts-dir", &practiceTextsDir, fileCfg.Practice.TextsDir)
	applyBoolConfig(cmd, "focus-weak", &practiceFocusWeak, fileCfg.Practice.FocusWeak)
	applyIntConfig(cmd, "weak-top", &practiceWeakTop, fileCfg.Practice.WeakTop)
	applyFloatConfig(cmd, "weak-factor", &practiceWeakFactor, fileCfg.Practice.WeakFactor)
	applyIntConfig(cmd, "weak-window", &practiceWeakWindow, fileCfg.Practice.WeakWindow)

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	pools, _, err := loadPools(cfg.TextsDir)
	if err != nil {
		return err
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

	chooser := newChooser(context.Background(), cfg, st)
	m, err := tui.NewModel(cfg, pools, chooser, st)
	if err != nil {
		return fmt.Errorf("failed to start test: %w", err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildConfig() (model.Config, error) {
	lang, err := model.ParseLanguage(practiceLang)
	if err != nil {
		return model.Config{}, fmt.Errorf("--lang: %w", err)
	}
	mode, err := model.ParseMode(practiceMode)
	if err != nil {
		return model.Config{}, fmt.Errorf("--mode: %w", err)
	}
	duration, err := model.ParseDuration(practiceDuration)
	if err != nil {
		return model.Config{}, fmt.Errorf("--duration: %w", err)
	}
	cfg := model.Config{
		Lang:       lang,
		Mode:       mode,
		Duration:   duration,
		TextsDir:   practiceTextsDir,
		FocusWeak:  practiceFocusWeak,
		WeakTop:    practiceWeakTop,
		WeakFactor: practiceWeakFactor,
		WeakWindow: practiceWeakWindow,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// newChooser returns a uniform chooser, or a weak-focus chooser seeded from
// recent history when --focus-weak is set.
func newChooser(ctx context.Context, cfg model.Config, st *store.Store) generator.Chooser {
	gen := generator.New()
	if !cfg.FocusWeak {
		return gen
	}
	weakSet := map[rune]struct{}{}
	aggs, err := st.GetWeakChars(ctx, cfg.WeakWindow, cfg.Lang)
	if err != nil {
		logErrf("failed to load weak chars: %v\n", err)
	} else {
		weakSet = stats.SelectWeakChars(aggs, cfg.WeakTop, 3)
		if len(weakSet) == 0 {
			logErrln("no stats available for weak-char focus yet; choosing texts uniformly")
		}
	}
	return generator.NewWeakFocus(gen, weakSet, cfg.WeakFactor)
}

// loadPools overlays the built-in pools with pack.yaml and then with
// <lang>-<mode>.txt files from dir. sources names where each pool came from.
func loadPools(dir string) (texts.Pools, map[texts.Key]string, error) {
	pools := texts.Builtin()
	sources := make(map[texts.Key]string, len(pools))
	for k := range pools {
		sources[k] = "built-in"
	}
	if dir == "" {
		return pools, sources, nil
	}

	packPath := filepath.Join(dir, packFileName)
	if _, err := os.Stat(packPath); err == nil {
		pack, err := texts.LoadYAML(packPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load %s: %w", packPath, err)
		}
		pools = texts.Overlay(pools, pack)
		for k := range pack {
			sources[k] = packPath
		}
	} else if !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("failed to stat text pack: %w", err)
	}

	files, err := texts.LoadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	pools = texts.Overlay(pools, files)
	for k := range files {
		sources[k] = filepath.Join(dir, k.String()+".txt")
	}
	return pools, sources, nil
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

func newTextsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texts",
		Short: "List text pools",
		Args:  cobra.NoArgs,
		RunE:  runTextsCmd,
	}
	cmd.Flags().StringVar(&textsDir, "texts-dir", config.DefaultTextsDir(), "directory with custom text pools")
	return cmd
}

func runTextsCmd(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("texts-dir") {
		fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyStringConfig(cmd, "texts-dir", &textsDir, fileCfg.Practice.TextsDir)
	}
	pools, sources, err := loadPools(textsDir)
	if err != nil {
		return err
	}
	return writePoolList(cmd.OutOrStdout(), pools, sources)
}

func writePoolList(w io.Writer, pools texts.Pools, sources map[texts.Key]string) error {
	for _, k := range pools.Keys() {
		if _, err := fmt.Fprintf(w, "%-18s %4d  %s\n", k.String(), len(pools[k]), sources[k]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStatsConfig()
	if err != nil {
		return err
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

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return writeStatsReport(cmd.Context(), cmd.OutOrStdout(), st, cfg, reportWidth())
	}

	m := statsui.NewModel(st, cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func buildStatsConfig() (model.StatsConfig, error) {
	cfg := model.StatsConfig{
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}
	if statsLang != "" {
		lang, err := model.ParseLanguage(statsLang)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("--lang: %w", err)
		}
		cfg.Lang = lang
	}
	if statsMode != "" {
		mode, err := model.ParseMode(statsMode)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("--mode: %w", err)
		}
		cfg.Mode = mode
	}
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	if cfg.Last < 0 {
		return model.StatsConfig{}, fmt.Errorf("--last must be >= 0")
	}
	if cfg.CurveWindow < 1 {
		return model.StatsConfig{}, fmt.Errorf("--curve-window must be >= 1")
	}
	return cfg, nil
}

// reportWidth sizes sparklines to the controlling terminal when stderr is one.
func reportWidth() int {
	width, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || width < 40 {
		return defaultReportWidth
	}
	return width - 20
}

// writeStatsReport prints the plain-text report used when stdout is piped.
func writeStatsReport(ctx context.Context, w io.Writer, st *store.Store, cfg model.StatsConfig, width int) error {
	report, err := stats.BuildReport(ctx, st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := stats.RenderSummary(w, report.Sessions); err != nil {
		return err
	}
	if len(report.Sessions) == 0 {
		return nil
	}
	if err := stats.RenderCurves(w, report.Sessions, cfg.CurveWindow, width); err != nil {
		return err
	}
	if err := stats.RenderHistory(w, report.Sessions, time.Now(), historyLimit); err != nil {
		return err
	}
	return stats.RenderCharTable(w, report.CharAggsWindow)
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# swifttype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q          # english or bengali
# mode = %q         # sentence or paragraph
# duration = %d              # Seconds: 15, 30, 60 or 120
# texts-dir = %q
# focus-weak = false         # Prefer texts with weak characters
# weak-top = %d               # Number of weak characters to focus on
# weak-factor = %.1f          # Weight factor per weak character
# weak-window = %d           # Number of recent sessions to compute weak chars
`,
		string(defaultLang),
		string(defaultMode),
		defaultDuration,
		config.DefaultTextsDir(),
		defaultWeakTop,
		defaultWeakFactor,
		defaultWeakWindow,
	)
}

func validateConfig(cfg model.Config) error {
	if !cfg.Duration.Valid() {
		return fmt.Errorf("--duration must be one of 15, 30, 60, 120")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

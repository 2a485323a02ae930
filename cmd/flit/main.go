// Package main provides the CLI entrypoint for flit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avosk/flit/internal/config"
	"github.com/avosk/flit/internal/library"
	"github.com/avosk/flit/internal/model"
	"github.com/avosk/flit/internal/reader"
	"github.com/avosk/flit/internal/stats"
	"github.com/avosk/flit/internal/store"
	"github.com/avosk/flit/internal/text"
	"github.com/avosk/flit/internal/tui"
)

const (
	defaultWPM        = 300
	defaultChunkChars = 20
	defaultGap        = 40
	defaultStatsWidth = 60
)

var (
	readWPM   int
	readChunk int
	readGap   int
	readGuide bool

	statsBook  string
	statsSince string
	statsLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flit <file>",
		Short:         "TUI speed reader",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReadCmd,
	}

	rootCmd.Flags().IntVar(&readWPM, "wpm", defaultWPM, "reading rate in words per minute")
	rootCmd.Flags().IntVar(&readChunk, "chunk", defaultChunkChars, "chunk size in characters")
	rootCmd.Flags().IntVar(&readGap, "gap", defaultGap, "pair gap width")
	rootCmd.Flags().BoolVar(&readGuide, "guide", false, "show the center guide in paired mode")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLibraryCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runReadCmd(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	return openReader(path, settings)
}

func loadSettings(cmd *cobra.Command) (model.Settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "wpm", &readWPM, fileCfg.Reader.WPM)
	applyIntConfig(cmd, "chunk", &readChunk, fileCfg.Reader.ChunkChars)
	applyIntConfig(cmd, "gap", &readGap, fileCfg.Reader.Gap)
	applyBoolConfig(cmd, "guide", &readGuide, fileCfg.Reader.Guide)

	return model.Settings{
		WPM:        readWPM,
		ChunkChars: readChunk,
		Gap:        readGap,
		Guide:      readGuide,
	}, nil
}

func openReader(path string, settings model.Settings) error {
	words, err := text.LoadWords(path)
	if err != nil {
		return fmt.Errorf("failed to load book: %w", err)
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

	book, err := st.OpenBook(context.Background(), path, text.Title(path), len(words))
	if err != nil {
		return fmt.Errorf("failed to open book record: %w", err)
	}

	engine := reader.NewEngine(words, settings.WPM, settings.ChunkChars, settings.Gap, settings.Guide, book.Position)
	model := tui.NewModel(engine, st, book)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newLibraryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "Browse imported books",
		Args:  cobra.NoArgs,
		RunE:  runLibraryCmd,
	}
}

func runLibraryCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	books, err := st.ListBooks(context.Background())
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	picker := library.NewModel(books)
	program := tea.NewProgram(picker, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run library TUI: %w", err)
	}
	if picker.Selected() == "" {
		return nil
	}
	return openReader(picker.Selected(), settings)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsBook, "book", "", "filter by book title or path")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Book:  statsBook,
		Since: sinceTime,
		Last:  statsLast,
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

	sessions, err := st.ListSessions(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), sessions, statsWidth())
}

func statsWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultStatsWidth
	}
	return width - 12
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
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
	return fmt.Sprintf(`# flit configuration
# Uncomment a value to enable it. CLI flags override config values.

[reader]
# wpm = %d            # Reading rate in words per minute (%d-%d)
# chunk-chars = %d     # Chunk size in characters (%d-%d)
# gap = %d             # Pair gap width (%d-%d)
# guide = false        # Show the center guide in paired mode
`,
		defaultWPM, reader.WPMMin, reader.WPMMax,
		defaultChunkChars, reader.ChunkCharsMin, reader.ChunkCharsMax,
		defaultGap, reader.ManualGapMin, reader.ManualGapMax,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

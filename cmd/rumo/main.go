// Package main provides the CLI entrypoint for rumo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/rumo/internal/config"
	"github.com/verte-zerg/rumo/internal/model"
	"github.com/verte-zerg/rumo/internal/stats"
	"github.com/verte-zerg/rumo/internal/store"
	"github.com/verte-zerg/rumo/internal/timer"
	"github.com/verte-zerg/rumo/internal/tui"
)

const (
	defaultBackend   = store.BackendSQLite
	defaultRedisAddr = "localhost:6379"
)

var (
	storeBackend       string
	storePath          string
	storeRedisAddr     string
	storeRedisPassword string
	storeRedisDB       int

	weekColor bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rumo",
		Short:         "Terminal study timer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTimerCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&storeBackend, "backend", defaultBackend, "store backend: sqlite, redis or memory")
	flags.StringVar(&storePath, "db", config.DefaultDBPath(), "SQLite database path")
	flags.StringVar(&storeRedisAddr, "redis-addr", defaultRedisAddr, "Redis address for the redis backend")
	flags.StringVar(&storeRedisPassword, "redis-password", "", "Redis password")
	flags.IntVar(&storeRedisDB, "redis-db", 0, "Redis database index")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGoalCmd())
	rootCmd.AddCommand(newWeekCmd())

	return rootCmd
}

func runTimerCmd(cmd *cobra.Command, _ []string) error {
	storeCfg, err := resolveStoreConfig(cmd)
	if err != nil {
		return err
	}

	logPath := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "rumo")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	ctrl := timer.New(stats.NewLedger(nil, nil))
	m := tui.NewModel(ctrl, func(ctx context.Context) (store.KV, error) {
		return store.Open(ctx, storeCfg)
	})
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
	}()

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print this week's study time",
		Args:  cobra.NoArgs,
		RunE:  runWeekCmd,
	}
	cmd.Flags().BoolVar(&weekColor, "color", false, "force colored output")
	return cmd
}

func runWeekCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeStore(kv)

	ledger := stats.NewLedger(kv, nil)
	goal, _ := ledger.Goal(ctx)
	view := stats.LoadWeekView(ctx, ledger, 0)
	if err := stats.RenderWeek(cmd.OutOrStdout(), view, goal, weekColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [text]",
		Short: "Show or set the study goal",
		RunE:  runGoalCmd,
	}
}

func runGoalCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeStore(kv)

	ledger := stats.NewLedger(kv, nil)
	if len(args) == 0 {
		goal, ok := ledger.Goal(ctx)
		if !ok {
			logErrln("No study goal set. Set one with: rumo goal <text>")
			return nil
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), goal); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if _, err := ledger.SetGoal(ctx, strings.Join(args, " ")); err != nil {
		return fmt.Errorf("failed to set goal: %w", err)
	}
	return nil
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

func resolveStoreConfig(cmd *cobra.Command) (model.StoreConfig, error) {
	if err := config.LoadEnv(config.DefaultEnvPath()); err != nil {
		return model.StoreConfig{}, err
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.StoreConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(&fileCfg); err != nil {
		return model.StoreConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "backend", &storeBackend, fileCfg.Store.Backend)
	applyStringConfig(cmd, "db", &storePath, fileCfg.Store.Path)
	applyStringConfig(cmd, "redis-addr", &storeRedisAddr, fileCfg.Store.RedisAddr)
	applyStringConfig(cmd, "redis-password", &storeRedisPassword, fileCfg.Store.RedisPassword)
	applyIntConfig(cmd, "redis-db", &storeRedisDB, fileCfg.Store.RedisDB)

	cfg := model.StoreConfig{
		Backend:       storeBackend,
		Path:          storePath,
		RedisAddr:     storeRedisAddr,
		RedisPassword: storeRedisPassword,
		RedisDB:       storeRedisDB,
	}
	if err := validateStoreConfig(cfg); err != nil {
		return model.StoreConfig{}, err
	}
	return cfg, nil
}

func openStore(ctx context.Context, cmd *cobra.Command) (store.KV, error) {
	cfg, err := resolveStoreConfig(cmd)
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return kv, nil
}

func closeStore(kv store.KV) {
	if cerr := kv.Close(); cerr != nil {
		logErrf("failed to close store: %v\n", cerr)
	}
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

func validateStoreConfig(cfg model.StoreConfig) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case store.BackendSQLite:
		if cfg.Path == "" {
			return fmt.Errorf("--db must not be empty")
		}
	case store.BackendRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("--redis-addr must not be empty")
		}
		if cfg.RedisDB < 0 {
			return fmt.Errorf("--redis-db must be >= 0")
		}
	case store.BackendMemory:
	default:
		return fmt.Errorf("--backend must be one of sqlite, redis, memory")
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# rumo configuration
# Uncomment a value to enable it. RUMO_* environment variables override
# config values, and CLI flags override both.

[store]
# backend = %q            # sqlite, redis or memory
# path = %q
# redis-addr = %q
# redis-password = ""
# redis-db = 0
`,
		defaultBackend,
		config.DefaultDBPath(),
		defaultRedisAddr,
	)
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

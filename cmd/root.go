package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skillpath/skillpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillpath",
	Short: "AI-generated learning paths for any skill",
	Long:  "Skillpath generates personalized curricula, lessons, quizzes, resource lists and project ideas for any skill using an LLM, with deterministic fallbacks when the model misbehaves.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLPATH_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log resolved configuration and diagnostics to stderr")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(artifactsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger returns a stderr logger when --verbose is set, otherwise a
// no-op logger. The startup diagnostic (provider, model, redacted key)
// only appears in verbose mode.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		return zap.NewNop()
	}
	return log
}

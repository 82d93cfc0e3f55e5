package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/techwell/techwell/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "techwell",
	Short: "Interview practice and course progress tracking",
	Long:  "TechWell — terminal companion for mock interviews with adaptive question selection, plus course enrollment and progress tracking.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TECHWELL_DB env var)")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TECHWELL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mindmorph/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mindmorph",
	Short: "Turn notes into flashcards and spaced-repetition reviews",
	Long: `MindMorph ingests raw study material, generates flashcards, multiple-choice
questions, and fill-in-the-blank items with an LLM, and schedules reviews
with an expanding-interval algorithm.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDMORPH_DB env var)")
	rootCmd.PersistentFlags().String("session", "local", "Anonymous session ID")
	rootCmd.PersistentFlags().String("user", "", "Authenticated user ID (overrides --session)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDMORPH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

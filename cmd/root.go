package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pathwise-ed/pathwise/internal/curriculum"
	"github.com/pathwise-ed/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Learning path planner for school topics",
	Long:  "Pathwise — prerequisite-aware topic catalog and learning path planner for K-12 curricula.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner profile name or ID (overrides PATHWISE_LEARNER env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog JSON file (default: built-in catalog)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(learnerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCatalog returns the catalog from --catalog if given, else the built-in
// one.
func loadCatalog(cmd *cobra.Command) (*curriculum.Catalog, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return curriculum.LoadFile(p)
	}
	return curriculum.Default(), nil
}

// errNoLearners means no profile exists yet. Read-only commands treat this as
// a fresh state; commands that record progress surface it.
var errNoLearners = errors.New("no learner profiles yet; create one with 'pathwise learner add <name>'")

// resolveLearner picks the learner profile: --learner flag, then
// PATHWISE_LEARNER env var (either matches name or ID), then the sole
// existing profile.
func resolveLearner(ctx context.Context, cmd *cobra.Command, learners store.LearnerRepo) (*store.Learner, error) {
	key, _ := cmd.Flags().GetString("learner")
	if key == "" {
		key = os.Getenv("PATHWISE_LEARNER")
	}

	if key != "" {
		l, err := learners.ByName(ctx, key)
		if err != nil {
			return nil, err
		}
		if l == nil {
			if l, err = learners.Get(ctx, key); err != nil {
				return nil, err
			}
		}
		if l == nil {
			return nil, fmt.Errorf("unknown learner %q", key)
		}
		return l, nil
	}

	all, err := learners.All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(all) {
	case 0:
		return nil, errNoLearners
	case 1:
		return all[0], nil
	default:
		return nil, fmt.Errorf("%d learner profiles exist; pick one with --learner or PATHWISE_LEARNER", len(all))
	}
}

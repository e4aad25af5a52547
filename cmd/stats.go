package cmd

import (
	"fmt"

	"github.com/pathwise-ed/pathwise/internal/analytics"
	"github.com/pathwise-ed/pathwise/internal/badges"
	"github.com/pathwise-ed/pathwise/internal/progress"
	"github.com/spf13/cobra"
)

// readyListCap bounds the "ready to start" section of the stats output.
const readyListCap = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learner's progress and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		learner, err := resolveLearner(ctx, cmd, st.LearnerRepo())
		if err != nil {
			return err
		}

		svc, err := progress.NewService(ctx, catalog, learner.ID, st.EventRepo(), st.SnapshotRepo())
		if err != nil {
			return err
		}
		summary := analytics.BuildSummary(catalog, svc.State())

		fmt.Printf("Progress for %s\n\n", learner.Name)
		percent := 0.0
		if summary.TotalTopics > 0 {
			percent = float64(summary.CompletedTopics) / float64(summary.TotalTopics) * 100
		}
		fmt.Printf("Topics completed:   %d / %d  (%.0f%%)\n",
			summary.CompletedTopics, summary.TotalTopics, percent)
		fmt.Printf("Hours logged:       %.1f\n", summary.HoursSpent)
		fmt.Printf("Hours remaining:    %.1f\n", summary.HoursRemaining)
		if summary.ForcedTopics > 0 {
			fmt.Printf("Forced completions: %d\n", summary.ForcedTopics)
		}

		fmt.Println("\nBy grade and subject:")
		for _, g := range summary.Groups {
			fmt.Printf("  %-12s  %2d/%-2d  %3.0f%%\n",
				g.Group.GradeID+"/"+g.Group.SubjectID, g.Completed, g.Total, g.Percent())
		}

		if len(summary.Ready) > 0 {
			fmt.Println("\nReady to start:")
			shown := summary.Ready
			if len(shown) > readyListCap {
				shown = shown[:readyListCap]
			}
			for _, t := range shown {
				fmt.Printf("  %-28s  %s\n", t.ID, t.Name)
			}
			if extra := len(summary.Ready) - len(shown); extra > 0 {
				fmt.Printf("  ... and %d more\n", extra)
			}
		}

		counts, total, err := badges.NewService(catalog, st.EventRepo()).Counts(ctx, learner.ID)
		if err != nil {
			return err
		}
		fmt.Printf("\nBadges: %d total\n", total)
		for _, bt := range badges.AllBadgeTypes() {
			if counts[string(bt)] == 0 {
				continue
			}
			fmt.Printf("  %s %-10s  %d\n", bt.Icon(), bt.DisplayName(), counts[string(bt)])
		}
		return nil
	},
}

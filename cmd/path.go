package cmd

import (
	"errors"
	"fmt"

	"github.com/pathwise-ed/pathwise/internal/progress"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <grade> <subject>",
	Short: "Print the ordered learning path for a grade and subject",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		grade, subject := args[0], args[1]
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		path := catalog.LearningPath(grade, subject)
		if len(path) == 0 {
			return fmt.Errorf("no topics for grade %q subject %q", grade, subject)
		}

		completed := map[string]bool{}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		learner, err := resolveLearner(ctx, cmd, st.LearnerRepo())
		if err == nil {
			svc, err := progress.NewService(ctx, catalog, learner.ID, st.EventRepo(), st.SnapshotRepo())
			if err != nil {
				return err
			}
			completed = svc.State().CompletedSet()
		} else if !errors.Is(err, errNoLearners) {
			return err
		}

		fmt.Printf("Learning path for grade %s %s (%d topics):\n", grade, subject, len(path))
		var remaining float64
		for i, t := range path {
			mark := " "
			if completed[t.ID] {
				mark = "x"
			} else {
				remaining += t.EstimatedHours
			}
			fmt.Printf("  %2d. [%s] %-28s  %-32s  %.1fh\n", i+1, mark, t.ID, t.Name, t.EstimatedHours)
		}
		fmt.Printf("\nEstimated remaining: %.1f hours\n", remaining)

		if check, _ := cmd.Flags().GetBool("check"); check {
			ids := make([]string, len(path))
			for i, t := range path {
				ids[i] = t.ID
			}
			result := catalog.ValidateLearningPath(ids)
			for _, msg := range result.Errors {
				fmt.Printf("✗ %s\n", msg)
			}
			for _, msg := range result.Warnings {
				fmt.Printf("⚠ %s\n", msg)
			}
			if result.Valid && len(result.Warnings) == 0 {
				fmt.Println("Path checks out.")
			}
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().Bool("check", false, "Validate the generated path and print warnings")
}

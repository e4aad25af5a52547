package cmd

import (
	"errors"
	"fmt"

	"github.com/pathwise-ed/pathwise/internal/badges"
	"github.com/pathwise-ed/pathwise/internal/progress"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <topic-id>",
	Short: "Record a topic completion for the learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		hours, _ := cmd.Flags().GetFloat64("hours")
		force, _ := cmd.Flags().GetBool("force")

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

		elig, err := svc.Complete(ctx, args[0], hours, force)
		var prereqErr *progress.PrerequisiteError
		if errors.As(err, &prereqErr) {
			fmt.Println("✗ Prerequisites not met:")
			for _, id := range prereqErr.Missing {
				printTopicLine(catalog, id)
			}
			if len(elig.Recommended) > 0 {
				fmt.Println("\nWarm-ups to try first:")
				for _, id := range elig.Recommended {
					printTopicLine(catalog, id)
				}
			}
			return fmt.Errorf("use --force to record it anyway")
		}
		if err != nil {
			return err
		}

		topic, _ := catalog.Topic(args[0])
		logged := hours
		if logged <= 0 {
			logged = topic.EstimatedHours
		}
		fmt.Printf("Completed %s (%.1f hours logged).\n", topic.Name, logged)
		if force && !elig.CanStart {
			fmt.Println("Recorded despite missing prerequisites.")
		}

		awarded := badges.NewService(catalog, st.EventRepo()).
			EvaluateCompletion(ctx, learner.ID, topic, svc.State().CompletedSet())
		for _, b := range awarded {
			fmt.Printf("%s %s: %s (%s)\n",
				b.Type.Icon(), b.Type.DisplayName(), b.Reason, b.Rarity.DisplayName())
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().Float64("hours", 0, "Hours spent (default: the topic's estimated hours)")
	completeCmd.Flags().Bool("force", false, "Record the completion even if prerequisites are missing")
}

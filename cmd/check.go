package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathwise-ed/pathwise/internal/curriculum"
	"github.com/pathwise-ed/pathwise/internal/progress"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <topic-id>",
	Short: "Check whether the learner can start a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		topic, ok := catalog.Topic(args[0])
		if !ok {
			return fmt.Errorf("unknown topic %q", args[0])
		}

		elig, err := learnerEligibility(ctx, cmd, catalog, topic.ID)
		if err != nil {
			return err
		}

		if elig.CanStart {
			fmt.Printf("✓ Ready to start: %s\n", topic.Name)
			return nil
		}

		fmt.Printf("✗ Blocked: %s\n", topic.Name)
		fmt.Println("\nMissing prerequisites:")
		for _, id := range elig.Missing {
			printTopicLine(catalog, id)
		}
		if len(elig.Recommended) > 0 {
			fmt.Println("\nWarm-ups to try first:")
			for _, id := range elig.Recommended {
				printTopicLine(catalog, id)
			}
		}
		return nil
	},
}

// learnerEligibility loads the learner state and checks the topic against it.
// Without any profile it checks against a fresh state.
func learnerEligibility(ctx context.Context, cmd *cobra.Command, catalog *curriculum.Catalog, topicID string) (curriculum.Eligibility, error) {
	st, err := openStore(cmd)
	if err != nil {
		return curriculum.Eligibility{}, err
	}
	defer st.Close()

	learner, err := resolveLearner(ctx, cmd, st.LearnerRepo())
	if errors.Is(err, errNoLearners) {
		return catalog.CheckPrerequisites(topicID, nil), nil
	}
	if err != nil {
		return curriculum.Eligibility{}, err
	}

	svc, err := progress.NewService(ctx, catalog, learner.ID, st.EventRepo(), st.SnapshotRepo())
	if err != nil {
		return curriculum.Eligibility{}, err
	}
	return svc.Eligibility(topicID), nil
}

func printTopicLine(catalog *curriculum.Catalog, id string) {
	name := "(not in catalog)"
	if t, ok := catalog.Topic(id); ok {
		name = t.Name
	}
	fmt.Printf("  - %-28s  %s\n", id, name)
}

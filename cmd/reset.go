package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the learner's progress (or everything with --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		all, _ := cmd.Flags().GetBool("all")
		if !confirm {
			return fmt.Errorf("refusing to erase without --confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if all {
			if err := st.Wipe(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("All learner data wiped.")
			return nil
		}

		learner, err := resolveLearner(cmd.Context(), cmd, st.LearnerRepo())
		if err != nil {
			return err
		}
		if err := st.PurgeLearner(cmd.Context(), learner.ID); err != nil {
			return err
		}
		fmt.Printf("Erased all progress for %s. The profile is kept.\n", learner.Name)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("confirm", false, "Confirm the erase")
	resetCmd.Flags().Bool("all", false, "Wipe every learner, every event, and the sequence counter")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var learnerCmd = &cobra.Command{
	Use:   "learner",
	Short: "Manage learner profiles",
}

var learnerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a learner profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		learner, err := st.LearnerRepo().Create(cmd.Context(), args[0], grade)
		if err != nil {
			return err
		}
		fmt.Printf("Created learner profile %s (id %s).\n", learner.Name, learner.ID)
		return nil
	},
}

var learnerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learner profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		all, err := st.LearnerRepo().All(cmd.Context())
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No learner profiles yet. Create one with 'pathwise learner add <name>'.")
			return nil
		}

		fmt.Printf("%-20s  %-5s  %-36s  %s\n", "Name", "Grade", "ID", "Created")
		fmt.Println(strings.Repeat("─", 77))
		for _, l := range all {
			fmt.Printf("%-20s  %-5s  %-36s  %s\n",
				l.Name, l.Grade, l.ID, l.CreatedAt.Format("2006-01-02"))
		}
		fmt.Printf("\n%d learners\n", len(all))
		return nil
	},
}

func init() {
	learnerAddCmd.Flags().String("grade", "", "Learner's grade (e.g. k, 1, 2)")

	learnerCmd.AddCommand(learnerAddCmd)
	learnerCmd.AddCommand(learnerListCmd)
}

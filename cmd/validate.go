package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <topic-id>...",
	Short: "Validate an ordered list of topics as a learning path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		result := catalog.ValidateLearningPath(args)
		if only, _ := cmd.Flags().GetBool("difficulty"); only {
			result = catalog.ValidateDifficultyProgression(args)
		}
		for _, msg := range result.Errors {
			fmt.Printf("✗ %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Printf("⚠ %s\n", msg)
		}

		if !result.Valid {
			return fmt.Errorf("path is invalid (%d errors)", len(result.Errors))
		}
		if len(result.Warnings) > 0 {
			fmt.Printf("Path is valid with %d warnings.\n", len(result.Warnings))
		} else {
			fmt.Println("Path is valid.")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("difficulty", false, "Run only the difficulty progression check")
}

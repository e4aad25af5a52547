package cmd

import (
	"fmt"

	"github.com/pathwise-ed/pathwise/internal/curriculum"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with catalog files",
}

var catalogLintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Validate a catalog JSON file against the schema and graph rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := curriculum.LoadFile(args[0])
		if err != nil {
			return err
		}
		if err := catalog.Audit(); err != nil {
			return err
		}

		retired := 0
		for _, t := range catalog.Topics() {
			if !t.Active {
				retired++
			}
		}
		fmt.Printf("Catalog OK: %d topics", catalog.Len())
		if retired > 0 {
			fmt.Printf(" (%d retired)", retired)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogLintCmd)
}

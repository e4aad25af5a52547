package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain <topic-id>",
	Short: "Show the full prerequisite chain for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		topic, ok := catalog.Topic(args[0])
		if !ok {
			return fmt.Errorf("unknown topic %q", args[0])
		}

		chain := catalog.PrerequisiteChain(topic.ID)
		if len(chain) == 0 {
			fmt.Printf("%s has no prerequisites — ready to start.\n", topic.Name)
			return nil
		}

		fmt.Printf("Prerequisite chain for %s (%s):\n", topic.Name, topic.ID)
		for i, id := range chain {
			name := id
			if t, ok := catalog.Topic(id); ok {
				name = t.Name
			}
			fmt.Printf("  %2d. %-28s  %s\n", i+1, id, name)
		}
		return nil
	},
}

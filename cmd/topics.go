package cmd

import (
	"fmt"
	"strings"

	"github.com/pathwise-ed/pathwise/internal/curriculum"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List catalog topics (optionally filtered by grade or subject)",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		grade, _ := cmd.Flags().GetString("grade")
		subject, _ := cmd.Flags().GetString("subject")
		all, _ := cmd.Flags().GetBool("all")

		var topics []curriculum.Topic
		for _, t := range catalog.Topics() {
			if grade != "" && t.GradeID != grade {
				continue
			}
			if subject != "" && t.SubjectID != subject {
				continue
			}
			if !t.Active && !all {
				continue
			}
			topics = append(topics, t)
		}
		if len(topics) == 0 {
			return fmt.Errorf("no topics match grade=%q subject=%q", grade, subject)
		}

		// Header.
		fmt.Printf("%-28s  %-32s  %5s  %-8s  %-12s  %5s  %s\n",
			"ID", "Name", "Grade", "Subject", "Difficulty", "Hours", "Prereqs")
		fmt.Println(strings.Repeat("─", 108))

		for _, t := range topics {
			name := t.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			if !t.Active {
				name += " *"
			}
			fmt.Printf("%-28s  %-32s  %5s  %-8s  %-12s  %5.1f  %d\n",
				t.ID, name, t.GradeID, t.SubjectID,
				t.Difficulty.DisplayName(), t.EstimatedHours, len(t.Prerequisites))
		}

		fmt.Printf("\n%d topics", len(topics))
		if all {
			fmt.Print("  (* = retired)")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("grade", "", "Filter by grade (e.g. k, 1, 2)")
	topicsCmd.Flags().String("subject", "", "Filter by subject (e.g. math, reading)")
	topicsCmd.Flags().Bool("all", false, "Include retired topics")
}

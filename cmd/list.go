package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kelcheone/notes/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [lessons...]",
		Short: "List lessons and their exercises",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Lessons: args})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

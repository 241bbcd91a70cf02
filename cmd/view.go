package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kelcheone/notes/internal/domain"
	m "github.com/kelcheone/notes/internal/model"
)

var viewIDFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved run report",
		Long:  "View the latest run report, or the one given with --id, from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath, ID: viewIDFlag})
		},
	}

	cmd.Flags().StringVar(&viewIDFlag, viewIDFlagName, "", "ID of the report to show (default: latest)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

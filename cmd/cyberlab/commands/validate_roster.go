package commands

import (
	"github.com/spf13/cobra"

	"github.com/NEXTGEN-CyberLAB/API-Tools/cmd/cyberlab/handlers"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
)

// ValidateRoster returns the command that checks a roster file offline.
func ValidateRoster() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate-roster",
		Short: "Parse a roster file and show who would be invited",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ValidateRoster(cmd.Context(), path)
		},
	}

	cmd.Flags().StringVarP(&path, "roster", "r", roster.DefaultFile, "Path to the roster CSV file")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/NEXTGEN-CyberLAB/API-Tools/cmd/cyberlab/handlers"
)

// Ping returns the command that checks API connectivity and credentials.
func Ping(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check API connectivity and credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Ping(cmd.Context(), global.configPath, global.verbose)
		},
	}
}

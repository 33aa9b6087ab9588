package commands

import (
	"github.com/spf13/cobra"

	"github.com/NEXTGEN-CyberLAB/API-Tools/cmd/cyberlab/handlers"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
)

// Onboard returns the command that runs the onboarding workflow.
func Onboard(global *globalOptions) *cobra.Command {
	var opts handlers.OnboardOptions

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create a customer's project, invite users and provision their lab",
		Long: `Onboard a customer onto the CyberLAB subscription.

Steps, in order:
  1. Validate configuration and roster
  2. Check API connectivity and identify the calling user
  3. Create the customer project and resolve its team and policy
  4. Invite every roster user to the project
  5. Create the starter environment

Users are read from a CSV file (email,first,last[,role]). When the file is
missing and a terminal is attached, users are entered interactively.

Every failed call is collected and printed in full at the end of the run.
Only pre-flight failures exit non-zero.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ConfigPath = global.configPath
			opts.Verbose = global.verbose
			return handlers.Onboard(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Customer, "customer", "", "Customer name (prompted when omitted on a terminal)")
	cmd.Flags().StringVarP(&opts.RosterPath, "roster", "r", roster.DefaultFile, "Path to the roster CSV file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print what would be created without calling the API")
	cmd.Flags().StringVar(&opts.ReportFile, "report-file", "", "Write the failure report as JSON to this file")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus textfile format")
	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false, "Never prompt; fail when input is missing")

	return cmd
}

// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to handler functions in the handlers
// package.
package commands

import "github.com/spf13/cobra"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
}

// Root returns the root command for the cyberlab CLI.
func Root() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "cyberlab",
		Short:         "Onboard customers onto NEXTGEN CyberLAB in CloudShare",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (default: cyberlab.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every API call")

	cmd.AddCommand(Onboard(opts))
	cmd.AddCommand(Ping(opts))
	cmd.AddCommand(ValidateRoster())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

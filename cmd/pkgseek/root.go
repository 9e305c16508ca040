package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pkgseek <query>",
		Short: "Search package manifests across buckets",
		Long: `pkgseek maintains a searchable index of package manifests discovered in
bucket directories and answers substring queries against it. Buckets that
have not changed since the last run are never rescanned.`,
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

package cmd

import (
	"github.com/bacalhau-project/amiaudit/pkg/display"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func getRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the regions that will be audited",
		RunE: func(cmd *cobra.Command, _ []string) error {
			regions, err := resolveRegions(cmd.Context(), viper.GetBool("regions.discover"))
			if err != nil {
				return err
			}
			display.RenderRegions(cmd.OutOrStdout(), regions)
			return nil
		},
	}
	cmd.Flags().Bool("discover", false, "Discover enabled regions with EC2 instead of the built-in list")
	bindFlag(cmd.Flags().Lookup("discover"), "regions.discover")
	return cmd
}

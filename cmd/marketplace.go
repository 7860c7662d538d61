package cmd

import (
	"github.com/bacalhau-project/amiaudit/pkg/display"
	"github.com/bacalhau-project/amiaudit/pkg/ingest"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const DefaultMarketplaceListingsFile = "marketplace-listings.json"

func getMarketplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketplace",
		Short: "List the Ubuntu products published in the AWS Marketplace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := utils.ExpandPath(viper.GetString("marketplace.listings"))
			if err != nil {
				return err
			}
			summaries, err := ingest.ReadListingSummaries(path)
			if err != nil {
				return err
			}
			products := ingest.Products(summaries)
			logger.Get().Infof("Found %d marketplace products", len(products))
			display.RenderProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}

	cmd.Flags().String("listings", DefaultMarketplaceListingsFile, "Captured marketplace ListingSummaries JSON")
	bindFlag(cmd.Flags().Lookup("listings"), "marketplace.listings")
	return cmd
}

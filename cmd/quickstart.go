package cmd

import (
	"fmt"
	"time"

	"github.com/bacalhau-project/amiaudit/pkg/audit"
	"github.com/bacalhau-project/amiaudit/pkg/display"
	"github.com/bacalhau-project/amiaudit/pkg/images"
	"github.com/bacalhau-project/amiaudit/pkg/ingest"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func getQuickstartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickstart",
		Short: "Audit the Ubuntu listings of the EC2 quickstart launcher",
		Long: `Reads the captured quickstart list of every region, looks up each AMI in EC2,
classifies and parses the images and reports missing, duplicated, mismatched
and out of range listings. The processed records are written to --output for
use by quickstart-report.`,
		RunE: runQuickstart,
	}

	cmd.Flags().String("quickstart-dir", ".", "Directory holding <region>-getQuickstartList.json files")
	cmd.Flags().Bool("parallel", false, "Gather regions concurrently")
	cmd.Flags().StringP("output", "o", ingest.DefaultScraperDataFile, "Write processed records to this file")
	cmd.Flags().String("catalog", "", "YAML file listing the expected releases and architectures")
	cmd.Flags().Bool("discover", false, "Discover enabled regions with EC2 instead of the built-in list")

	bindFlag(cmd.Flags().Lookup("quickstart-dir"), "quickstart.dir")
	bindFlag(cmd.Flags().Lookup("parallel"), "audit.parallel")
	bindFlag(cmd.Flags().Lookup("output"), "quickstart.output")
	bindFlag(cmd.Flags().Lookup("catalog"), "audit.catalog")
	bindFlag(cmd.Flags().Lookup("discover"), "quickstart.discover")

	return cmd
}

func runQuickstart(cmd *cobra.Command, _ []string) error {
	l := logger.Get()
	ctx := logger.IntoContext(cmd.Context(), l.With(zap.String("command", cmd.Name())))

	catalog, err := loadCatalog(viper.GetString("audit.catalog"))
	if err != nil {
		return err
	}
	regions, err := resolveRegions(ctx, viper.GetBool("quickstart.discover"))
	if err != nil {
		return err
	}
	dir, err := utils.ExpandPath(viper.GetString("quickstart.dir"))
	if err != nil {
		return err
	}
	output, err := utils.ExpandPath(viper.GetString("quickstart.output"))
	if err != nil {
		return err
	}

	provider, err := newAWSProvider(ctx, viper.GetString("aws.profile"))
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = fmt.Sprintf(" Gathering quickstart listings for %d regions", len(regions))
	s.Start()
	results := audit.Gather(
		ctx,
		regions,
		ingest.NewQuickstartGatherer(dir, provider),
		images.NewPipeline(images.DefaultIdentity()),
		viper.GetBool("audit.parallel"),
	)
	s.Stop()

	if output != "" {
		if err := ingest.WriteScraperData(output, audit.RegionRecords(results)); err != nil {
			return err
		}
		l.Infof("Wrote %s", output)
	}

	report := audit.Audit(results, catalog)
	display.RenderRecords(cmd.OutOrStdout(), report)
	display.RenderFindings(cmd.OutOrStdout(), report)

	if errs := report.Errors(); len(errs) > 0 {
		return fmt.Errorf("%d of %d regions failed: %w", len(errs), len(regions), errs[0])
	}
	return nil
}

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bacalhau-project/amiaudit/pkg/ingest"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	awsprovider "github.com/bacalhau-project/amiaudit/pkg/providers/aws"
	"github.com/bacalhau-project/amiaudit/pkg/reconcile"
	"github.com/bacalhau-project/amiaudit/pkg/streams"
	"github.com/bacalhau-project/amiaudit/pkg/table"
	"github.com/bacalhau-project/amiaudit/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	SourceStreams = "streams"
	SourceSSM     = "ssm"

	NoUpdatesNeededMessage = "No updates needed"
	UpdatesNeededMessage   = "There are some updates needed"
)

func getQuickstartReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickstart-report",
		Short: "Compare quickstart AMIs with the latest published Ubuntu images",
		Long: `Reads the records written by the quickstart command and compares every
Canonical listing with the latest image id for its release and architecture.
Exits with code 2 when any listing needs an update.`,
		RunE: runQuickstartReport,
	}

	cmd.Flags().String("scraper-data", ingest.DefaultScraperDataFile, "Records written by the quickstart command")
	cmd.Flags().Bool("needs-update-only", false, "Only show listings that need an update")
	cmd.Flags().String("source", SourceStreams, "Where to look up the latest images (streams, ssm)")
	cmd.Flags().String("streams-url", streams.DefaultURL, "Simplestreams index of released AWS images")
	cmd.Flags().String("s3-bucket", "", "Upload the rendered report to this bucket")
	cmd.Flags().String("s3-key", "", "Object key for the uploaded report (default: quickstart-report-<timestamp>.txt)")

	bindFlag(cmd.Flags().Lookup("scraper-data"), "report.scraper_data")
	bindFlag(cmd.Flags().Lookup("needs-update-only"), "report.needs_update_only")
	bindFlag(cmd.Flags().Lookup("source"), "report.source")
	bindFlag(cmd.Flags().Lookup("streams-url"), "streams.url")
	bindFlag(cmd.Flags().Lookup("s3-bucket"), "report.s3_bucket")
	bindFlag(cmd.Flags().Lookup("s3-key"), "report.s3_key")

	return cmd
}

func runQuickstartReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	l := logger.Get()

	path, err := utils.ExpandPath(viper.GetString("report.scraper_data"))
	if err != nil {
		return err
	}
	regions, err := ingest.ReadScraperData(path)
	if err != nil {
		return err
	}

	var provider *awsprovider.AWSProvider
	needProvider := viper.GetString("report.source") == SourceSSM || viper.GetString("report.s3_bucket") != ""
	if needProvider {
		if provider, err = newAWSProvider(ctx, viper.GetString("aws.profile")); err != nil {
			return err
		}
	}

	var lookup reconcile.ImageLookup
	switch source := strings.ToLower(viper.GetString("report.source")); source {
	case SourceStreams:
		lookup = streams.NewClient(viper.GetString("streams.url"))
	case SourceSSM:
		lookup = awsprovider.NewSSMLookup(provider)
	default:
		return fmt.Errorf("unknown image source %q (expected %s or %s)", source, SourceStreams, SourceSSM)
	}

	rows, needsUpdate, err := reconcile.NewFreshnessChecker(lookup).Check(
		ctx, regions, viper.GetBool("report.needs_update_only"),
	)
	if err != nil {
		return err
	}

	var rendered bytes.Buffer
	ft := table.NewFreshnessTable(io.MultiWriter(cmd.OutOrStdout(), &rendered))
	ft.AddRows(rows)
	ft.Render()

	if bucket := viper.GetString("report.s3_bucket"); bucket != "" {
		key := viper.GetString("report.s3_key")
		if key == "" {
			key = fmt.Sprintf("quickstart-report-%s.txt", time.Now().UTC().Format("20060102T150405Z"))
		}
		key = filepath.ToSlash(key)
		if err := provider.UploadReport(
			ctx, awsprovider.DefaultRegion, bucket, key, rendered.Bytes(), "text/plain",
		); err != nil {
			return err
		}
	}

	if needsUpdate {
		l.Warn(UpdatesNeededMessage)
		return &ExitError{Code: ExitCodeUpdatesNeeded, Message: UpdatesNeededMessage}
	}
	fmt.Fprintln(cmd.OutOrStdout(), NoUpdatesNeededMessage)
	return nil
}

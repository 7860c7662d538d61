//go:build ignore

// Regenerates internal/clouds/aws/aws_data.yaml from the regions enabled for
// the current AWS credentials.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	internal_aws "github.com/bacalhau-project/amiaudit/internal/clouds/aws"
	awsprovider "github.com/bacalhau-project/amiaudit/pkg/providers/aws"
	"github.com/briandowns/spinner"
	"gopkg.in/yaml.v2"
)

const awsDataPath = "internal/clouds/aws/aws_data.yaml"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Suffix = " Fetching AWS regions"
	s.Start()

	provider, err := awsprovider.NewAWSProvider(ctx, os.Getenv("AWS_PROFILE"))
	if err != nil {
		s.Stop()
		log.Fatalf("Failed to create AWS provider: %v", err)
	}
	regions, err := provider.ListRegions(ctx)
	s.Stop()
	if err != nil {
		log.Fatalf("Failed to list AWS regions: %v", err)
	}

	data, err := yaml.Marshal(internal_aws.AWSData{Regions: regions})
	if err != nil {
		log.Fatalf("Failed to marshal AWS data: %v", err)
	}
	if err := os.WriteFile(awsDataPath, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", awsDataPath, err)
	}
	fmt.Printf("Wrote %d regions to %s\n", len(regions), awsDataPath)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	internal_aws "github.com/bacalhau-project/amiaudit/internal/clouds/aws"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
	awsprovider "github.com/bacalhau-project/amiaudit/pkg/providers/aws"
	"github.com/bacalhau-project/amiaudit/pkg/utils"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"
)

// newAWSProvider is swapped out in tests.
var newAWSProvider = awsprovider.NewAWSProviderFunc

// loadCatalog reads a catalog override file, or returns the default catalog
// when path is empty.
func loadCatalog(path string) (models.Catalog, error) {
	if path == "" {
		return models.DefaultCatalog(), nil
	}
	expanded, err := utils.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog models.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", expanded, err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog %s has no releases", expanded)
	}
	for _, entry := range catalog {
		if entry.Release == "" {
			return nil, fmt.Errorf("catalog %s has an entry without a release", expanded)
		}
		for _, arch := range entry.Architectures {
			if arch != models.ArchAMD64 && arch != models.ArchARM64 {
				return nil, fmt.Errorf("catalog %s: unsupported architecture %q for %s", expanded, arch, entry.Release)
			}
		}
	}
	return catalog, nil
}

// resolveRegions returns the regions to audit: either discovered through EC2
// or the embedded list, narrowed to aws.regions when set.
func resolveRegions(ctx context.Context, discover bool) ([]string, error) {
	l := logger.Get()
	var all []string
	var err error

	if discover {
		provider, perr := newAWSProvider(ctx, viper.GetString("aws.profile"))
		if perr != nil {
			return nil, perr
		}
		all, err = provider.ListRegions(ctx)
	} else {
		all, err = internal_aws.GetAllAWSRegions()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get AWS regions: %w", err)
	}

	only := utils.RemoveDuplicates(viper.GetStringSlice("aws.regions"))
	regions, unknown := internal_aws.FilterRegions(all, only)
	if len(unknown) > 0 {
		l.Warnf("Ignoring unknown regions: %s", strings.Join(unknown, ", "))
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("no AWS regions to audit")
	}
	return regions, nil
}

package reconcile

import (
	"context"
	"fmt"

	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
)

// ImageLookup returns the authoritative AMI ID for a region, release and
// architecture.
type ImageLookup interface {
	ImageID(ctx context.Context, region, release, arch string) (string, error)
}

// FreshnessChecker compares quickstart AMIs against an authoritative source.
type FreshnessChecker struct {
	lookup ImageLookup
}

func NewFreshnessChecker(lookup ImageLookup) *FreshnessChecker {
	return &FreshnessChecker{lookup: lookup}
}

// CheckImage looks up the authoritative ID and reports whether the observed
// ID differs from it.
func (c *FreshnessChecker) CheckImage(
	ctx context.Context,
	region, release, arch, observedID string,
) (string, bool, error) {
	authoritativeID, err := c.lookup.ImageID(ctx, region, release, arch)
	if err != nil {
		return "", false, fmt.Errorf("failed to look up %s %s in %s: %w", release, arch, region, err)
	}
	return authoritativeID, observedID != authoritativeID, nil
}

// Check runs CheckImage for every parsed Canonical record. The first record
// with an unknown listing architecture, or the first failed lookup, aborts
// the whole batch. When needsUpdateOnly is set only stale rows are returned.
// The boolean result is true when any record needs an update.
func (c *FreshnessChecker) Check(
	ctx context.Context,
	regions []models.RegionRecords,
	needsUpdateOnly bool,
) ([]models.FreshnessRow, bool, error) {
	l := logger.Get()
	var rows []models.FreshnessRow
	needsAnyUpdate := false

	for _, region := range regions {
		l.Infof("Checking region %s ...", region.Region)
		for _, record := range region.Records {
			if record.Owner != models.OwnerCanonical {
				continue
			}
			switch record.ListingArch {
			case models.ArchAMD64, models.ArchARM64:
			default:
				return nil, false, fmt.Errorf("%w %q for %s in %s",
					ErrUnknownArchitecture, record.ListingArch, record.ImageID, region.Region)
			}
			if !record.Parsed {
				l.Debugf("%s - skipping unparsed image %s", region.Region, record.ImageID)
				continue
			}

			authoritativeID, needsUpdate, err := c.CheckImage(
				ctx, region.Region, record.ReleaseVersion(), record.ListingArch, record.ImageID,
			)
			if err != nil {
				return nil, false, err
			}
			if needsUpdate {
				needsAnyUpdate = true
			}
			if !needsUpdateOnly || needsUpdate {
				rows = append(rows, models.FreshnessRow{
					Region:          region.Region,
					Release:         record.ReleaseVersion(),
					Arch:            record.ListingArch,
					Slot:            record.QuickstartSlot,
					ObservedID:      record.ImageID,
					AuthoritativeID: authoritativeID,
					NeedsUpdate:     needsUpdate,
				})
			}
		}
	}
	return rows, needsAnyUpdate, nil
}

package reconcile

import (
	"fmt"

	"github.com/bacalhau-project/amiaudit/pkg/models"
)

// MaxPrimarySlot is the last quickstart slot a Canonical listing is expected in.
const MaxPrimarySlot = 10

// Reconcile walks a region's records in listing order and reports listing
// problems: architecture mismatches, listings past the primary slots,
// duplicate AMIs and catalog expectations nobody satisfied.
//
// Only parsed Canonical records are checked. A Canonical record whose release
// is not in the catalog stops the region; the findings gathered so far are
// returned with a *RegionError.
func Reconcile(
	region string,
	records []models.ImageRecord,
	catalog models.Catalog,
) ([]models.Finding, *Matrix, error) {
	matrix := NewMatrix(catalog)
	findings := []models.Finding{}
	seen := make(map[string]int)

	add := func(format string, args ...interface{}) {
		findings = append(findings, models.NewFinding(region, fmt.Sprintf(format, args...)))
	}

	for _, record := range records {
		if record.Owner != models.OwnerCanonical || !record.Parsed {
			continue
		}

		if err := matrix.Satisfy(record.ReleaseVersion(), record.Arch()); err != nil {
			return findings, matrix, &RegionError{Region: region, Err: err}
		}
		seen[record.ImageID]++

		if record.Arch() != record.ListingArch {
			add("'%s' listing arch %s and AMI (%s) arch %s are not equal",
				record.UniqueIdentifier, record.ListingArch, record.ImageID, record.Arch())
		}
		if record.QuickstartSlot > MaxPrimarySlot {
			add("'%s' %s listing slot is greater than %d - slot %d",
				record.UniqueIdentifier, record.ListingArch, MaxPrimarySlot, record.QuickstartSlot)
		}
		if seen[record.ImageID] > 1 {
			add("'%s' %s listing AMI %s appears more than once",
				record.UniqueIdentifier, record.ListingArch, record.ImageID)
		}
	}

	for _, missing := range matrix.Remaining() {
		add("There are no listings for %s %s", missing.Release, missing.Arch)
	}

	return findings, matrix, nil
}

package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/bacalhau-project/amiaudit/pkg/models"
)

const (
	DefaultScraperDataFile = "quickstart_entries.json"
	scraperDataPermissions = 0644
)

// WriteScraperData writes the normalized records of every region.
func WriteScraperData(path string, regions []models.RegionRecords) error {
	data, err := json.MarshalIndent(regions, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode scraper data: %w", err)
	}
	if err := os.WriteFile(path, data, scraperDataPermissions); err != nil {
		return fmt.Errorf("failed to write scraper data: %w", err)
	}
	return nil
}

// ReadScraperData reads records written by WriteScraperData, sorted by region.
func ReadScraperData(path string) ([]models.RegionRecords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scraper data: %w", err)
	}
	var regions []models.RegionRecords
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("failed to parse scraper data %s: %w", path, err)
	}
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Region < regions[j].Region
	})
	return regions, nil
}

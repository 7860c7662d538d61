package ingest

import (
	"path/filepath"
	"testing"

	"github.com/bacalhau-project/amiaudit/internal/testutil"
	"github.com/bacalhau-project/amiaudit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraperDataRoundTripSortsRegions(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultScraperDataFile)
	regions := []models.RegionRecords{
		{Region: "us-west-2", Records: []models.ImageRecord{{
			Region:      "us-west-2",
			ImageID:     "ami-west",
			ListingArch: models.ArchAMD64,
			Owner:       models.OwnerCanonical,
			Parsed:      true,
			Fields:      models.ParsedFields{models.FieldReleaseVersion: "20.04", models.FieldArch: "amd64"},
		}}},
		{Region: "ap-south-1"},
	}

	require.NoError(t, WriteScraperData(path, regions))
	got, err := ReadScraperData(path)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "ap-south-1", got[0].Region)
	assert.Equal(t, "us-west-2", got[1].Region)
	assert.Equal(t, "20.04", got[1].Records[0].ReleaseVersion())
	assert.Equal(t, models.OwnerCanonical, got[1].Records[0].Owner)
}

func TestReadScraperDataInvalid(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFileInDir(t, dir, "bad.json", `{"region": "us-east-1"}`)

	_, err := ReadScraperData(path)
	assert.ErrorContains(t, err, "failed to parse scraper data")
}

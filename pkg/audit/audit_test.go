package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bacalhau-project/amiaudit/pkg/images"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
	"github.com/bacalhau-project/amiaudit/pkg/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGatherer struct {
	mu     sync.Mutex
	raws   map[string][]models.RawImage
	errs   map[string]error
	panics map[string]bool
	calls  []string
}

func (f *fakeGatherer) Gather(_ context.Context, region string) ([]models.RawImage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, region)
	f.mu.Unlock()

	if f.panics[region] {
		panic("boom")
	}
	if err := f.errs[region]; err != nil {
		return nil, err
	}
	return f.raws[region], nil
}

func raw(region string, slot int, arch, id, name string) models.RawImage {
	return models.RawImage{
		Region:         region,
		QuickstartSlot: slot,
		ListingArch:    arch,
		ImageID:        id,
		OwnerAlias:     images.CanonicalOwnerID,
		Name:           name,
		Title:          "Ubuntu Server",
		Type:           "Quick Start",
	}
}

var focalCatalog = models.Catalog{
	{Release: "20.04", Architectures: []string{models.ArchAMD64, models.ArchARM64}},
}

func newFakeGatherer() *fakeGatherer {
	return &fakeGatherer{
		raws: map[string][]models.RawImage{
			"us-east-1": {
				raw("us-east-1", 1, models.ArchAMD64, "ami-a",
					"ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223"),
				raw("us-east-1", 1, models.ArchARM64, "ami-b",
					"ubuntu/images/hvm-ssd/ubuntu-focal-20.04-arm64-server-20210223"),
				{Region: "us-east-1", ImageID: "ami-win", OwnerAlias: "amazon-windows", Name: "Windows"},
			},
			"eu-west-1": {
				raw("eu-west-1", 3, models.ArchAMD64, "ami-c",
					"ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223"),
			},
			"ap-south-1": {
				raw("ap-south-1", 1, models.ArchAMD64, "ami-d",
					"ubuntu/images/hvm-ssd/ubuntu-jammy-22.04-amd64-server-20220101"),
			},
		},
		errs:   map[string]error{},
		panics: map[string]bool{},
	}
}

func TestGatherSortsByRegion(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		g := newFakeGatherer()
		results := Gather(
			context.Background(),
			[]string{"us-east-1", "eu-west-1", "ap-south-1"},
			g,
			images.NewPipeline(images.DefaultIdentity()),
			parallel,
		)

		require.Len(t, results, 3)
		assert.Equal(t, "ap-south-1", results[0].Region)
		assert.Equal(t, "eu-west-1", results[1].Region)
		assert.Equal(t, "us-east-1", results[2].Region)
		assert.Len(t, results[2].Records, 2, "unknown owners are dropped")
		assert.ElementsMatch(t, []string{"us-east-1", "eu-west-1", "ap-south-1"}, g.calls)
	}
}

func TestGatherRegionFailureDoesNotCancelOthers(t *testing.T) {
	g := newFakeGatherer()
	g.errs["eu-west-1"] = errors.New("AuthFailure")
	g.panics["ap-south-1"] = true

	results := Gather(
		context.Background(),
		[]string{"us-east-1", "eu-west-1", "ap-south-1"},
		g,
		images.NewPipeline(images.DefaultIdentity()),
		true,
	)

	require.Len(t, results, 3)
	assert.ErrorContains(t, results[0].Err, "panic while gathering ap-south-1")
	assert.EqualError(t, results[1].Err, "AuthFailure")
	assert.NoError(t, results[2].Err)
	assert.Len(t, results[2].Records, 2)

	persisted := RegionRecords(results)
	require.Len(t, persisted, 3)
	assert.NotNil(t, persisted[1].Records)
	assert.Empty(t, persisted[1].Records)
}

func TestGatherLogsRegions(t *testing.T) {
	tl := logger.NewTestLogger(t)
	logger.SetGlobalLogger(tl.Logger)
	defer logger.SetGlobalLogger(nil)

	Gather(context.Background(), []string{"eu-west-1"}, newFakeGatherer(),
		images.NewPipeline(images.DefaultIdentity()), false)

	assert.Contains(t, tl.GetLogs(), "scraping eu-west-1 ...")
}

func TestAudit(t *testing.T) {
	g := newFakeGatherer()
	g.errs["us-west-2"] = errors.New("timeout")

	results := Gather(
		context.Background(),
		[]string{"us-east-1", "eu-west-1", "ap-south-1", "us-west-2"},
		g,
		images.NewPipeline(images.DefaultIdentity()),
		true,
	)
	report := Audit(results, focalCatalog)

	require.Len(t, report.Regions, 4)
	assert.True(t, report.HasFindings())

	apSouth := report.Regions[0]
	assert.ErrorIs(t, apSouth.Err, reconcile.ErrUnsupportedRelease)

	euWest := report.Regions[1]
	require.NoError(t, euWest.Err)
	assert.Equal(t, []models.Finding{
		{Region: "eu-west-1", Message: "There are no listings for 20.04 arm64"},
	}, euWest.Findings)
	assert.Equal(t, []reconcile.Expectation{{Release: "20.04", Arch: models.ArchARM64}}, euWest.Missing)

	usEast := report.Regions[2]
	assert.NoError(t, usEast.Err)
	assert.Empty(t, usEast.Findings)
	assert.Empty(t, usEast.Missing)

	usWest := report.Regions[3]
	assert.EqualError(t, usWest.Err, "timeout")
	assert.Nil(t, usWest.Findings, "failed regions are not reconciled")

	assert.Len(t, report.Errors(), 2)
}

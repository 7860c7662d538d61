package audit

import (
	"context"
	"fmt"
	"sort"

	"github.com/bacalhau-project/amiaudit/pkg/goroutine"
	"github.com/bacalhau-project/amiaudit/pkg/images"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Gatherer produces a region's raw images in listing order.
type Gatherer interface {
	Gather(ctx context.Context, region string) ([]models.RawImage, error)
}

// RegionResult is the output of gathering one region.
type RegionResult struct {
	Region  string
	Records []models.ImageRecord
	Err     error
}

// Gather processes every region, one goroutine per region when parallel is
// set, and returns the results sorted by region. A failing region records
// its error and does not stop the others.
func Gather(
	ctx context.Context,
	regions []string,
	gatherer Gatherer,
	pipeline *images.Pipeline,
	parallel bool,
) []RegionResult {
	results := make([]RegionResult, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	if !parallel {
		g.SetLimit(1)
	}

	for i, region := range regions {
		i, region := i, region
		g.Go(func() error {
			id := goroutine.RegisterGoroutine("gather " + region)
			defer goroutine.DeregisterGoroutine(id)
			defer func() {
				if r := recover(); r != nil {
					logger.LogPanic(r)
					results[i] = RegionResult{Region: region, Err: fmt.Errorf("panic while gathering %s: %v", region, r)}
				}
			}()

			results[i] = gatherRegion(gctx, region, gatherer, pipeline)
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Region < results[j].Region
	})
	return results
}

func gatherRegion(
	ctx context.Context,
	region string,
	gatherer Gatherer,
	pipeline *images.Pipeline,
) RegionResult {
	l := logger.FromContext(ctx)
	l.Infof("scraping %s ...", region)
	l.Debugf("active gatherers: %v", goroutine.GetActiveGoroutines())

	raws, err := gatherer.Gather(ctx, region)
	if err != nil {
		l.Errorf("%s - failed to gather images: %v", region, err)
		return RegionResult{Region: region, Err: err}
	}
	return RegionResult{Region: region, Records: pipeline.ProcessAll(raws)}
}

// RegionRecords converts gather results into the persisted record sets.
// Failed regions are kept with no records.
func RegionRecords(results []RegionResult) []models.RegionRecords {
	out := make([]models.RegionRecords, 0, len(results))
	for _, r := range results {
		records := r.Records
		if records == nil {
			records = []models.ImageRecord{}
		}
		out = append(out, models.RegionRecords{Region: r.Region, Records: records})
	}
	return out
}

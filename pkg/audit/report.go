package audit

import (
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
	"github.com/bacalhau-project/amiaudit/pkg/reconcile"
)

// RegionReport holds the reconciliation outcome of one region.
type RegionReport struct {
	Region   string
	Records  []models.ImageRecord
	Findings []models.Finding
	Missing  []reconcile.Expectation
	Err      error
}

// Report is the ordered audit result across regions.
type Report struct {
	Regions []RegionReport
}

// Audit reconciles each region in order. Gather errors and catalog errors
// are attached to their region only.
func Audit(results []RegionResult, catalog models.Catalog) *Report {
	l := logger.Get()
	report := &Report{Regions: make([]RegionReport, 0, len(results))}

	for _, result := range results {
		rr := RegionReport{Region: result.Region, Records: result.Records, Err: result.Err}
		if result.Err == nil {
			findings, matrix, err := reconcile.Reconcile(result.Region, result.Records, catalog)
			rr.Findings = findings
			rr.Missing = matrix.Remaining()
			if err != nil {
				l.Errorf("%v", err)
				rr.Err = err
			}
		}
		report.Regions = append(report.Regions, rr)
	}
	return report
}

// HasFindings reports whether any region raised a finding.
func (r *Report) HasFindings() bool {
	for _, region := range r.Regions {
		if len(region.Findings) > 0 {
			return true
		}
	}
	return false
}

// Errors returns the per-region errors in region order.
func (r *Report) Errors() []error {
	var errs []error
	for _, region := range r.Regions {
		if region.Err != nil {
			errs = append(errs, region.Err)
		}
	}
	return errs
}

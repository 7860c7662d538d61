package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/bacalhau-project/amiaudit/pkg/audit"
	"github.com/bacalhau-project/amiaudit/pkg/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	regionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	findingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// RenderRecords writes every region's records in listing order.
func RenderRecords(w io.Writer, report *audit.Report) {
	for _, region := range report.Regions {
		fmt.Fprintln(w, regionStyle.Render(region.Region))
		for _, record := range region.Records {
			fmt.Fprintln(w, record.String())
		}
		fmt.Fprintln(w)
	}
}

// RenderFindings writes the findings and errors of each region that has any.
func RenderFindings(w io.Writer, report *audit.Report) {
	if !report.HasFindings() && len(report.Errors()) == 0 {
		fmt.Fprintln(w, infoStyle.Render("No issues found"))
		return
	}
	for _, region := range report.Regions {
		if len(region.Findings) == 0 && region.Err == nil {
			continue
		}
		fmt.Fprintln(w, regionStyle.Render(region.Region))
		for _, finding := range region.Findings {
			fmt.Fprintln(w, findingStyle.Render("\t* "+finding.Message))
		}
		if region.Err != nil {
			fmt.Fprintln(w, errorStyle.Render("\t! "+region.Err.Error()))
		}
		fmt.Fprintln(w)
	}
}

// RenderProducts writes marketplace products.
func RenderProducts(w io.Writer, products []models.MarketplaceProduct) {
	for _, p := range products {
		fmt.Fprintln(w, p.String())
	}
	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("%d products", len(products))))
}

// RenderRegions writes one region per line.
func RenderRegions(w io.Writer, regions []string) {
	fmt.Fprintln(w, strings.Join(regions, "\n"))
}

package table

import (
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/bacalhau-project/amiaudit/pkg/models"
	"github.com/olekukonko/tablewriter"
)

var FreshnessHeader = []string{
	"Region", "Release", "Arch", "Position", "Quickstart AMI", "Current AMI", "Needs update",
}

// FreshnessTable renders the quickstart freshness report.
type FreshnessTable struct {
	table *tablewriter.Table
	rows  []models.FreshnessRow
}

func NewFreshnessTable(w io.Writer) *FreshnessTable {
	if w == nil {
		w = os.Stdout
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(FreshnessHeader)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return &FreshnessTable{table: table}
}

func (ft *FreshnessTable) AddRows(rows []models.FreshnessRow) {
	ft.rows = append(ft.rows, rows...)
}

// Render writes the rows sorted by region, last region first.
func (ft *FreshnessTable) Render() {
	rows := append([]models.FreshnessRow(nil), ft.rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Region > rows[j].Region
	})
	for _, row := range rows {
		ft.table.Append([]string{
			row.Region,
			row.Release,
			row.Arch,
			strconv.Itoa(row.Slot),
			row.ObservedID,
			row.AuthoritativeID,
			strconv.FormatBool(row.NeedsUpdate),
		})
	}
	ft.table.Render()
}

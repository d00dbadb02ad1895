package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Maneesh-s-k/networks-lab/pkg/chart"
	"github.com/Maneesh-s-k/networks-lab/pkg/measurement"
	"github.com/olekukonko/tablewriter"
)

var summaryHeader = []string{"Policy", "Chunk Size (KB)", "Average Throughput (Kbps)"}

// WriteSummary draws the bulk transfer averages as a text table.
func WriteSummary(w io.Writer, averages []measurement.Point) error {
	if _, err := fmt.Fprintln(w, "Bulk transfer averages (TCP):"); err != nil {
		return err
	}
	output := tablewriter.NewWriter(w)
	output.SetHeader(summaryHeader)
	output.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	for _, p := range averages {
		output.Append([]string{
			p.Policy,
			strconv.FormatFloat(p.MessageSizeKB, 'f', -1, 64),
			chart.FormatThousands(p.ThroughputKbps),
		})
	}
	output.Render()
	return nil
}

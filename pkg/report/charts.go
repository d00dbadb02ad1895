package report

import (
	"github.com/Maneesh-s-k/networks-lab/pkg/chart"
	"github.com/Maneesh-s-k/networks-lab/pkg/settings"
	"gonum.org/v1/plot/vg"
)

// Charts of the report, in drawing order
const (
	TcpSweep = iota
	UdpSweep
	Bulk1MB
	Bulk10MB
)

// Charts returns the layout of the four report charts.
func Charts(s settings.Settings) [4]chart.Chart {
	sweepTicks := evenTicks(0, s.SizeRange.Max, 2)
	sweep := func(title, filename string, marker chart.Marker) chart.Chart {
		return chart.Chart{
			Title:      title,
			XLabel:     "Message Size (KB)",
			YLabel:     "Throughput (Kbps)",
			Filename:   filename,
			Marker:     marker,
			XTicks:     sweepTicks,
			Width:      12 * vg.Inch,
			Height:     8 * vg.Inch,
			LineWidth:  vg.Points(2.5),
			MarkerSize: vg.Points(8),
			TitleSize:  vg.Points(18),
			LabelSize:  vg.Points(14),
		}
	}
	bulk := func(title, filename string, marker chart.Marker, markerSize float64, ticks []float64) chart.Chart {
		return chart.Chart{
			Title:      title,
			XLabel:     "Chunk Size (KB)",
			YLabel:     "Average Throughput (Kbps)",
			Filename:   filename,
			Marker:     marker,
			XTicks:     ticks,
			Width:      10 * vg.Inch,
			Height:     7 * vg.Inch,
			LineWidth:  vg.Points(3),
			MarkerSize: vg.Points(markerSize),
			TitleSize:  vg.Points(16),
			LabelSize:  vg.Points(12),
		}
	}

	return [4]chart.Chart{
		TcpSweep: sweep("TCP Throughput vs. Message Size", s.Outputs.TcpSweep, chart.Circle),
		UdpSweep: sweep("UDP Throughput vs. Message Size", s.Outputs.UdpSweep, chart.Triangle),
		Bulk1MB:  bulk("Average Throughput for 1 MB Bulk Transfer (TCP)", s.Outputs.Bulk1MB, chart.Square, 10, s.Sizes1MB),
		Bulk10MB: bulk("Average Throughput for 10 MB Bulk Transfer (TCP)", s.Outputs.Bulk10MB, chart.Diamond, 9, s.Sizes10MB),
	}
}

// Ticks every step from start up to end included
func evenTicks(start, end, step float64) []float64 {
	var ticks []float64
	for v := start; v <= end; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// Package report turns the throughput measurements into the four report charts.
package report

import (
	"io"

	"github.com/Maneesh-s-k/networks-lab/pkg/chart"
	"github.com/Maneesh-s-k/networks-lab/pkg/measurement"
	"github.com/Maneesh-s-k/networks-lab/pkg/settings"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"
)

// Overview sheet layout
const (
	overviewCols = 2
)

var (
	overviewCellWidth  = 10 * vg.Inch
	overviewCellHeight = 7 * vg.Inch
)

// Run loads the measurements and writes the charts, one after the other.
// Loading errors are *measurement.FileNotFoundError or *measurement.ReadError; the first failure stops the run.
func Run(s settings.Settings, stdout io.Writer) error {
	table, err := measurement.LoadFiles(s.InputPaths())
	if err != nil {
		return err
	}

	if err := table.CheckSizes(); err != nil {
		return errors.Wrap(err, "filtering by message size")
	}

	charts := Charts(s)
	plots := make([]*plot.Plot, 0, len(charts))

	klog.Info("Generating Plot 1: TCP Throughput vs. Message Size...")
	p, err := sweep(s, table, "tcp", charts[TcpSweep])
	if err != nil {
		return err
	}
	plots = append(plots, p)

	klog.Info("Generating Plot 2: UDP Throughput vs. Message Size...")
	p, err = sweep(s, table, "udp", charts[UdpSweep])
	if err != nil {
		return err
	}
	plots = append(plots, p)

	bulk := table.Where(measurement.ProtocolIs("tcp"), measurement.SizeIn(s.BulkSizes()...))
	averages := measurement.MeanByPolicyAndSize(bulk)
	if s.PrintSummary {
		if err := WriteSummary(stdout, averages); err != nil {
			return errors.Wrap(err, "writing bulk transfer summary")
		}
	}

	klog.Info("Generating Plot 3: 1MB Bulk Transfer Performance...")
	p, err = render(s, charts[Bulk1MB], measurement.SelectSizes(averages, s.Sizes1MB...))
	if err != nil {
		return err
	}
	plots = append(plots, p)

	klog.Info("Generating Plot 4: 10MB Bulk Transfer Performance...")
	p, err = render(s, charts[Bulk10MB], measurement.SelectSizes(averages, s.Sizes10MB...))
	if err != nil {
		return err
	}
	plots = append(plots, p)

	if s.OverviewFile != "" {
		klog.Info("Generating overview sheet...")
		path := s.Path(s.OverviewFile)
		if err := chart.SaveOverview(plots, overviewCols, overviewCellWidth, overviewCellHeight, path); err != nil {
			return errors.Wrap(err, "saving overview")
		}
		klog.Infof("-> Saved '%s'", path)
	}
	return nil
}

// Throughput against message size for one protocol, rows taken as they are
func sweep(s settings.Settings, table measurement.Table, protocol string, c chart.Chart) (*plot.Plot, error) {
	rows := table.Where(measurement.ProtocolIs(protocol), measurement.SizeBetween(s.SizeRange.Min, s.SizeRange.Max))
	points, err := rows.Points()
	if err != nil {
		return nil, errors.Wrapf(err, "preparing %s", c.Title)
	}
	return render(s, c, points)
}

func render(s settings.Settings, c chart.Chart, points []measurement.Point) (*plot.Plot, error) {
	path := s.Path(c.Filename)
	p, err := chart.Render(c, points, path)
	if err != nil {
		return nil, err
	}
	klog.Infof("-> Saved '%s'", path)
	return p, nil
}

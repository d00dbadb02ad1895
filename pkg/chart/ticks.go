package chart

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
)

// ThousandsTicks places about AxisTicks major ticks and labels them as whole numbers with thousands separators.
type ThousandsTicks struct{}

// Ticks implements the plot.Ticker interface.
func (ThousandsTicks) Ticks(min, max float64) []plot.Tick {
	ticks := hplot.Ticks{N: AxisTicks}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = FormatThousands(ticks[i].Value)
	}
	return ticks
}

// FormatThousands truncates v toward zero and groups its digits by thousands: 1234567.8 is "1,234,567".
func FormatThousands(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if math.Abs(v) >= math.MaxInt64 {
		return humanize.Commaf(math.Trunc(v))
	}
	return humanize.Comma(int64(v))
}

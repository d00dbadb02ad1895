package measurement

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Point is a (message size, throughput) observation of a policy, or the mean of a group of them.
type Point struct {
	Policy         string
	MessageSizeKB  float64
	ThroughputKbps float64
}

// Points converts the rows as they are. Missing throughput markers become NaN;
// any other non-numeric throughput is an error. Rows without a policy are left out.
func (t Table) Points() ([]Point, error) {
	points := make([]Point, 0, len(t.Rows))
	for i, r := range t.Rows {
		v, err := ParseNumber(r.ThroughputKbps)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d (%s, %s, %v KB): column %s", i, r.Protocol, r.Policy, r.MessageSizeKB, ColThroughput)
		}
		if r.Policy == "" {
			continue
		}
		points = append(points, Point{Policy: r.Policy, MessageSizeKB: r.MessageSizeKB, ThroughputKbps: v})
	}
	return points, nil
}

type groupKey struct {
	policy string
	size   float64
}

// MeanByPolicyAndSize coerces the throughput of every row to a number, dropping what does not parse,
// and averages it per (policy, message size). Rows missing the policy or the size belong to no group.
// Groups come out sorted by policy then size.
// A group without any numeric throughput keeps a NaN mean.
func MeanByPolicyAndSize(t Table) []Point {
	values := make(map[groupKey][]float64)
	var keys []groupKey
	for _, r := range t.Rows {
		if r.Policy == "" || math.IsNaN(r.MessageSizeKB) {
			continue
		}
		k := groupKey{policy: r.Policy, size: r.MessageSizeKB}
		if _, seen := values[k]; !seen {
			keys = append(keys, k)
			values[k] = nil
		}
		if v := CoerceNumber(r.ThroughputKbps); !math.IsNaN(v) {
			values[k] = append(values[k], v)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].policy != keys[j].policy {
			return keys[i].policy < keys[j].policy
		}
		return keys[i].size < keys[j].size
	})

	means := make([]Point, 0, len(keys))
	for _, k := range keys {
		mean := math.NaN()
		if len(values[k]) > 0 {
			mean = stat.Mean(values[k], nil)
		}
		means = append(means, Point{Policy: k.policy, MessageSizeKB: k.size, ThroughputKbps: mean})
	}
	return means
}

// SelectSizes keeps the points whose message size is one of sizes, in order.
func SelectSizes(points []Point, sizes ...float64) []Point {
	var selected []Point
	for _, p := range points {
		if floatInSlice(p.MessageSizeKB, sizes) {
			selected = append(selected, p)
		}
	}
	return selected
}

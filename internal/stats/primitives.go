// Package stats implements the statistics core: primitives (percentile,
// standard deviation, RPS, normal CDF/inverse-CDF, Q-Q projection),
// hypothesis testers (analytic and permutation), a bootstrap mean
// sampler, and the per-worker/aggregate processor that ties them
// together into a StatsSummary.
package stats

import (
	"math"
	"sort"

	"github.com/burl-go/burl/internal/timescale"
)

// Sum adds a sequence of floats.
func Sum(samples []float64) float64 {
	var total float64
	for _, v := range samples {
		total += v
	}
	return total
}

// Percentile implements the "integer-or-linear" empirical percentile:
// samples must be pre-sorted ascending; n is len(samples). level is a
// fraction in [0,1].
func Percentile(samples []float64, level float64, n int) float64 {
	c := float64(n) * level
	ci := int(math.Round(c))
	if isIntegral(c) {
		lo := ci - 1
		hi := ci
		if hi > n-1 {
			hi = n - 1
		}
		if lo < 0 {
			lo = 0
		}
		return 0.5 * (samples[lo] + samples[hi])
	}
	i := int(math.Floor(c)) + 1
	if i > n {
		i = n
	}
	i--
	if i < 0 {
		i = 0
	}
	return samples[i]
}

func isIntegral(c float64) bool {
	return math.Abs(c-math.Round(c)) < 1e-9
}

// StandardDeviation is the unbiased (n-1) sample standard deviation.
// Returns (0, false) when n <= 1.
func StandardDeviation(samples []float64, mean float64) (float64, bool) {
	n := len(samples)
	if n <= 1 {
		return 0, false
	}
	var sumSq float64
	for _, v := range samples {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1)), true
}

// RequestsPerSecond returns (0, false) when meanInScale < 1e-16; otherwise
// scale.Factor(Secs)/meanInScale.
func RequestsPerSecond(meanInScale float64, scale timescale.Scale) (float64, bool) {
	if meanInScale < 1e-16 {
		return 0, false
	}
	return scale.Factor(timescale.Secs) / meanInScale, true
}

// NormalCDF is the cumulative distribution function of a normal
// distribution with the given mean and std, built on the error function the same way the original Rust statrs
// crate's Normal::cdf is defined.
func NormalCDF(x, mean, std float64) float64 {
	return 0.5 * (1 + math.Erf((x-mean)/(std*math.Sqrt2)))
}

// NormalInvCDF is the inverse CDF (probit / quantile function) of a
// normal distribution, via Erfinv.
func NormalInvCDF(p, mean, std float64) float64 {
	return mean + std*math.Sqrt2*math.Erfinv(2*p-1)
}

// LevelValue is a single (level-as-percent, value) pair, used for both
// the fixed display-percentile set and the n/10-spaced Q-Q set.
type LevelValue struct {
	LevelPct float64
	Value    float64
}

// Point is a generic (x, y) pair, used for the normal Q-Q projection.
type Point struct {
	X float64
	Y float64
}

// NormalQQ maps each (level%, value) pair to (N^-1(level/100; mean,std), value).
func NormalQQ(percentilesByLevel []LevelValue, mean, std float64) []Point {
	out := make([]Point, len(percentilesByLevel))
	for i, lv := range percentilesByLevel {
		out[i] = Point{
			X: NormalInvCDF(lv.LevelPct/100, mean, std),
			Y: lv.Value,
		}
	}
	return out
}

// ConfidenceInterval sorts dist and returns (percentile(alpha/2),
// percentile(1-alpha/2)). Returns (0,0,false) when dist is empty.
func ConfidenceInterval(dist []float64, alpha float64) (lo, hi float64, ok bool) {
	n := len(dist)
	if n == 0 {
		return 0, 0, false
	}
	sorted := make([]float64, n)
	copy(sorted, dist)
	sort.Float64s(sorted)
	lo = Percentile(sorted, alpha/2, n)
	hi = Percentile(sorted, 1-alpha/2, n)
	return lo, hi, true
}

package stats

import (
	"math"
	"math/rand"
)

// NormalParams summarizes a sample assumed approximately normal.
type NormalParams struct {
	Mean      float64
	Std       float64
	NSamples  int
}

// Outcome is the tagged result of a hypothesis test.
type Outcome struct {
	Kind   OutcomeKind
	PValue float64
}

type OutcomeKind int

const (
	Inconclusive OutcomeKind = iota
	Improved
	Regressed
)

func (k OutcomeKind) String() string {
	switch k {
	case Improved:
		return "Improved"
	case Regressed:
		return "Regressed"
	default:
		return "Inconclusive"
	}
}

// permutationSeed is the fixed seed spec.md §9 requires for reproducible
// permutation/bootstrap sampling. The source uses ChaCha8; no ChaCha8
// implementation exists anywhere in the example pack, so math/rand seeded
// identically is used instead (see DESIGN.md Open Question 1). Structural
// properties (sign-flip symmetry, same-seed reproducibility) hold
// regardless of PRNG choice; the literal p-values the source's ChaCha8
// stream produces do not carry over.
const permutationSeed = 42

// AnalyticTester runs the parametric two-sample test on means, given
// baseline b and current c NormalParams.
func AnalyticTester(b, c NormalParams, alpha float64) *Outcome {
	s2 := b.Std*b.Std/float64(b.NSamples) + c.Std*c.Std/float64(c.NSamples)
	if math.Abs(s2) < 1e-12 {
		return nil
	}
	t := (b.Mean - c.Mean) / math.Sqrt(s2)
	p := 1 - NormalCDF(math.Abs(t), 0, 1)

	if p > alpha {
		return &Outcome{Kind: Inconclusive}
	}
	if b.Mean < c.Mean {
		return &Outcome{Kind: Regressed, PValue: p}
	}
	return &Outcome{Kind: Improved, PValue: p}
}

// PermutationTester runs the non-parametric permutation test on
// mean-difference between baseline b and current c duration sequences.
// Returns nil when either sequence is empty.
func PermutationTester(b, c []float64, alpha float64, k int) *Outcome {
	nB, nC := len(b), len(c)
	if nB == 0 || nC == 0 {
		return nil
	}
	total := nB + nC

	pooled := make([]float64, 0, total)
	pooled = append(pooled, b...)
	pooled = append(pooled, c...)

	meanB := Sum(b) / float64(nB)
	meanC := Sum(c) / float64(nC)
	diff := meanB - meanC

	rng := rand.New(rand.NewSource(permutationSeed))
	extreme := 0

	for i := 0; i < k; i++ {
		perm := rng.Perm(total)
		bIdx := perm[:nB]

		var sumB float64
		for _, idx := range bIdx {
			sumB += pooled[idx]
		}
		permMeanB := sumB / float64(nB)

		sumTotal := Sum(pooled)
		permMeanC := (sumTotal - sumB) / float64(nC)

		d := permMeanB - permMeanC
		if (diff >= 0 && d >= diff) || (diff < 0 && d <= diff) {
			extreme++
		}
	}

	p := float64(extreme) / float64(k)

	if p > alpha {
		return &Outcome{Kind: Inconclusive}
	}
	if meanB < meanC {
		return &Outcome{Kind: Regressed, PValue: p}
	}
	return &Outcome{Kind: Improved, PValue: p}
}

// BootstrapSampler resamples with replacement from an observed sequence
// to estimate the sampling distribution of the mean.
type BootstrapSampler struct {
	samples []float64
	rng     *rand.Rand
}

// NewBootstrapSampler seeds the PRNG deterministically (see permutationSeed).
func NewBootstrapSampler(samples []float64) *BootstrapSampler {
	return &BootstrapSampler{
		samples: samples,
		rng:     rand.New(rand.NewSource(permutationSeed)),
	}
}

// SampleMeans produces nBootstrap resamples, each of drawSize draws with
// replacement, and returns the per-resample means.
func (b *BootstrapSampler) SampleMeans(drawSize, nBootstrap int) []float64 {
	if len(b.samples) == 0 {
		return nil
	}
	means := make([]float64, nBootstrap)
	n := len(b.samples)
	for i := 0; i < nBootstrap; i++ {
		var sum float64
		for j := 0; j < drawSize; j++ {
			idx := b.rng.Intn(n)
			sum += b.samples[idx]
		}
		means[i] = sum / float64(drawSize)
	}
	return means
}

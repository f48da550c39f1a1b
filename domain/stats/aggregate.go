package stats

import (
	"math"

	"polygen/domain/core"
	"polygen/domain/polymer"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Summary pairs a batch mean with its standard error of the mean.
// SEM uses the population standard deviation divided by sqrt(N-1), matching
// the reporting convention of the reference pipeline.
type Summary struct {
	Mean float64 `json:"mean"`
	SEM  float64 `json:"sem"`
}

// Summarize reduces one metric's per-trial values to mean and SEM
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, core.ErrEmptyBatch
	}

	mean, err := mstats.Mean(values)
	if err != nil {
		return Summary{}, err
	}

	// Population form (the sample form would divide by N-1 inside the
	// std dev as well)
	stdDev, err := mstats.StandardDeviation(values)
	if err != nil {
		return Summary{}, err
	}

	sem := 0.0
	if len(values) > 1 {
		sem = stdDev / math.Sqrt(float64(len(values)-1))
	}

	return Summary{Mean: mean, SEM: sem}, nil
}

// BatchAccumulator collects per-trial metrics during a batch run.
// Append-only and trial-local until final aggregation; no other state crosses
// trial boundaries.
type BatchAccumulator struct {
	GGs    []float64
	LLs    []float64
	GLs    []float64
	LGs    []float64
	Ratios []float64
}

// NewBatchAccumulator pre-sizes the metric arrays for trials appends
func NewBatchAccumulator(trials int) *BatchAccumulator {
	if trials < 0 {
		trials = 0
	}
	return &BatchAccumulator{
		GGs:    make([]float64, 0, trials),
		LLs:    make([]float64, 0, trials),
		GLs:    make([]float64, 0, trials),
		LGs:    make([]float64, 0, trials),
		Ratios: make([]float64, 0, trials),
	}
}

// Add records one trial's pair counts and G:L ratio
func (b *BatchAccumulator) Add(counts polymer.PairCounts, ratio float64) {
	b.GGs = append(b.GGs, float64(counts.GG))
	b.LLs = append(b.LLs, float64(counts.LL))
	b.GLs = append(b.GLs, float64(counts.GL))
	b.LGs = append(b.LGs, float64(counts.LG))
	b.Ratios = append(b.Ratios, ratio)
}

// Trials returns the number of recorded trials
func (b *BatchAccumulator) Trials() int {
	return len(b.GGs)
}

// AggregateReport holds the batch-level statistics for reporting.
// LBlock is the mean/SEM of (LL/LG + 1), GBlock of (GG/GL + 1), and RC of
// (GG/GL), all computed elementwise across trials after zero-correction of
// the GL and LG denominators. MeanRatio is the plain mean of the per-trial
// G:L ratios and is unaffected by the correction.
type AggregateReport struct {
	Length int `json:"length"`
	Trials int `json:"trials"`

	GGPairs Summary `json:"gg_pairs"`
	LLPairs Summary `json:"ll_pairs"`
	GLPairs Summary `json:"gl_pairs"`
	LGPairs Summary `json:"lg_pairs"`

	LBlock    Summary `json:"l_block"`
	GBlock    Summary `json:"g_block"`
	RC        Summary `json:"r_c"`
	MeanRatio float64 `json:"mean_ratio"`
}

// Aggregate reduces an accumulated batch to its report.
//
// The zero-correction pass replaces zero GL/LG counts with 1 before they are
// used as denominators. This is a known statistical wart inherited from the
// reference pipeline, kept byte-for-byte for output compatibility; it biases
// the derived metrics for trials that had no transitions of the given kind.
func Aggregate(length int, acc *BatchAccumulator) (AggregateReport, error) {
	n := acc.Trials()
	if n == 0 {
		return AggregateReport{}, core.ErrEmptyBatch
	}

	report := AggregateReport{Length: length, Trials: n}

	var err error
	if report.GGPairs, err = Summarize(acc.GGs); err != nil {
		return AggregateReport{}, err
	}
	if report.LLPairs, err = Summarize(acc.LLs); err != nil {
		return AggregateReport{}, err
	}
	if report.GLPairs, err = Summarize(acc.GLs); err != nil {
		return AggregateReport{}, err
	}
	if report.LGPairs, err = Summarize(acc.LGs); err != nil {
		return AggregateReport{}, err
	}

	correctedGL := zeroCorrected(acc.GLs)
	correctedLG := zeroCorrected(acc.LGs)

	lBlock := make([]float64, n)
	floats.DivTo(lBlock, acc.LLs, correctedLG)
	floats.AddConst(1, lBlock)
	if report.LBlock, err = Summarize(lBlock); err != nil {
		return AggregateReport{}, err
	}

	gBlock := make([]float64, n)
	floats.DivTo(gBlock, acc.GGs, correctedGL)
	rc := make([]float64, n)
	copy(rc, gBlock)
	floats.AddConst(1, gBlock)
	if report.GBlock, err = Summarize(gBlock); err != nil {
		return AggregateReport{}, err
	}
	if report.RC, err = Summarize(rc); err != nil {
		return AggregateReport{}, err
	}

	if report.MeanRatio, err = mstats.Mean(acc.Ratios); err != nil {
		return AggregateReport{}, err
	}

	return report, nil
}

// zeroCorrected copies values, replacing zeros with 1 so the slice is safe to
// divide by. Leaves the input untouched.
func zeroCorrected(values []float64) []float64 {
	corrected := make([]float64, len(values))
	for i, v := range values {
		if v == 0 {
			corrected[i] = 1
		} else {
			corrected[i] = v
		}
	}
	return corrected
}

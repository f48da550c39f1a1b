package app

import (
	"io"
	"time"

	"polygen/domain/core"
	"polygen/domain/polymer"
	"polygen/domain/stats"
	"polygen/internal"
	"polygen/internal/config"
	"polygen/internal/errors"
	"polygen/ports"
)

// BatchService drives one synchronous batch run: N independent generation
// trials at a fixed length, sequence persistence, aggregation, and reporting.
// Strictly single-threaded; all randomness comes from one stream per run.
type BatchService struct {
	rngPort ports.RNGPort
	logger  *internal.Logger
}

// BatchRequest defines the inputs for one deterministic batch run
type BatchRequest struct {
	Batch  config.BatchConfig
	Sink   ports.SequenceSink
	Report io.Writer
	RunID  core.RunID // optional, will be generated if empty
}

// BatchResult contains the outcome of a batch run
type BatchResult struct {
	RunID     core.RunID            `json:"run_id"`
	Report    stats.AggregateReport `json:"report"`
	RuntimeMs int64                 `json:"runtime_ms"`
}

// NewBatchService creates a batch service
func NewBatchService(rngPort ports.RNGPort, logger *internal.Logger) *BatchService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &BatchService{rngPort: rngPort, logger: logger}
}

// Run executes the batch. Any generation, calculation, or write error aborts
// immediately with no retries; lines already flushed to the sink stay on disk.
func (s *BatchService) Run(req BatchRequest) (*BatchResult, error) {
	startTime := time.Now()

	runID := req.RunID
	if runID == "" {
		runID = core.NewRunID()
	}

	if req.Batch.Trials <= 0 {
		return nil, errors.ConfigInvalid("trial count must be positive")
	}

	genCfg := polymer.GenerationConfig{
		Length:       req.Batch.Length,
		GProbability: req.Batch.GProbability,
		FixedCount:   req.Batch.FixedCount,
		DimerMode:    req.Batch.DimerMode,
	}
	// Fail fast before the sink sees any data
	if err := genCfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generation settings")
	}

	rng, err := s.rngPort.Stream("batch:"+runID.String(), req.Batch.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create RNG stream")
	}

	s.logger.Info("batch %s: %d trials, length %d, seed %d",
		runID, req.Batch.Trials, req.Batch.Length, req.Batch.Seed)

	acc := stats.NewBatchAccumulator(req.Batch.Trials)
	for trial := 0; trial < req.Batch.Trials; trial++ {
		p, err := polymer.Generate(rng, genCfg)
		if err != nil {
			return nil, errors.Wrapf(err, "trial %d: generation failed", trial)
		}

		if err := req.Sink.WriteSequence(p); err != nil {
			return nil, errors.Wrapf(err, "trial %d: persistence failed", trial)
		}

		ratio, err := polymer.GLRatio(p)
		if err != nil {
			return nil, errors.DivisionByZero("trial produced an L-free polymer", err)
		}

		acc.Add(polymer.CountPairs(p), ratio)
	}

	report, err := stats.Aggregate(req.Batch.Length, acc)
	if err != nil {
		return nil, errors.Wrap(err, "aggregation failed")
	}

	if req.Report != nil {
		if err := RenderReport(req.Report, report); err != nil {
			return nil, errors.IOFailure("failed to render report", err)
		}
	}

	result := &BatchResult{
		RunID:     runID,
		Report:    report,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}

	s.logger.Info("batch %s: finished in %dms", runID, result.RuntimeMs)
	return result, nil
}

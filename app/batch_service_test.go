package app

import (
	"fmt"
	"strings"
	"testing"

	"polygen/adapters/rng"
	"polygen/domain/core"
	"polygen/domain/polymer"
	"polygen/internal"
	"polygen/internal/config"
	"polygen/internal/errors"
)

// memorySink records sequences in memory for assertions
type memorySink struct {
	sequences []polymer.Polymer
	failAfter int // fail the write once this many sequences landed; -1 disables
	closed    bool
}

func newMemorySink() *memorySink {
	return &memorySink{failAfter: -1}
}

func (m *memorySink) WriteSequence(p polymer.Polymer) error {
	if m.failAfter >= 0 && len(m.sequences) >= m.failAfter {
		return errors.IOFailure("disk full", fmt.Errorf("write refused"))
	}
	m.sequences = append(m.sequences, p)
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return nil
}

func testBatchConfig() config.BatchConfig {
	return config.BatchConfig{
		Trials:       50,
		Length:       48,
		GProbability: 0.25,
		FixedCount:   true,
		Seed:         42,
	}
}

func quietLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}

func TestBatchServiceRun(t *testing.T) {
	sink := newMemorySink()
	var out strings.Builder

	service := NewBatchService(rng.NewStreamFactory(), quietLogger())
	result, err := service.Run(BatchRequest{
		Batch:  testBatchConfig(),
		Sink:   sink,
		Report: &out,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.RunID.String() == "" {
		t.Error("Expected a generated run ID")
	}
	if len(sink.sequences) != 50 {
		t.Fatalf("Expected 50 persisted sequences, got %d", len(sink.sequences))
	}
	for i, p := range sink.sequences {
		if p.Len() != 48 {
			t.Errorf("Sequence %d has length %d, expected 48", i, p.Len())
		}
		if got := p.CountG(); got != 12 {
			t.Errorf("Sequence %d has %d Gs, fixed mode requires exactly 12", i, got)
		}
	}

	if result.Report.Trials != 50 {
		t.Errorf("Report covers %d trials, expected 50", result.Report.Trials)
	}
	if !strings.HasPrefix(out.String(), "n: 48\n") {
		t.Errorf("Report does not open with the length line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "OTHER METRICS\n") {
		t.Errorf("Report is missing the derived metrics section:\n%s", out.String())
	}
}

// Same run ID and seed must replay the identical batch: sequences and report
// bytes both.
func TestBatchServiceDeterminism(t *testing.T) {
	runID := core.RunID("pinned-run")

	run := func() ([]polymer.Polymer, string) {
		sink := newMemorySink()
		var out strings.Builder
		service := NewBatchService(rng.NewStreamFactory(), quietLogger())
		if _, err := service.Run(BatchRequest{
			Batch:  testBatchConfig(),
			Sink:   sink,
			Report: &out,
			RunID:  runID,
		}); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return sink.sequences, out.String()
	}

	firstSeqs, firstReport := run()
	secondSeqs, secondReport := run()

	if len(firstSeqs) != len(secondSeqs) {
		t.Fatalf("Trial counts diverged: %d vs %d", len(firstSeqs), len(secondSeqs))
	}
	for i := range firstSeqs {
		if firstSeqs[i] != secondSeqs[i] {
			t.Fatalf("Sequence %d diverged:\n%s\n%s", i, firstSeqs[i], secondSeqs[i])
		}
	}
	if firstReport != secondReport {
		t.Errorf("Reports diverged:\n%s\n%s", firstReport, secondReport)
	}
}

func TestBatchServiceRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.BatchConfig)
	}{
		{"zero trials", func(c *config.BatchConfig) { c.Trials = 0 }},
		{"bad probability", func(c *config.BatchConfig) { c.GProbability = 2 }},
		{"negative length", func(c *config.BatchConfig) { c.Length = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testBatchConfig()
			tt.mutate(&cfg)

			sink := newMemorySink()
			service := NewBatchService(rng.NewStreamFactory(), quietLogger())
			_, err := service.Run(BatchRequest{Batch: cfg, Sink: sink})
			if err == nil {
				t.Fatal("Expected an error")
			}
			if len(sink.sequences) != 0 {
				t.Errorf("Fail-fast violated: %d sequences generated before rejection", len(sink.sequences))
			}
		})
	}
}

func TestBatchServiceAbortsOnWriteFailure(t *testing.T) {
	sink := newMemorySink()
	sink.failAfter = 10

	service := NewBatchService(rng.NewStreamFactory(), quietLogger())
	_, err := service.Run(BatchRequest{Batch: testBatchConfig(), Sink: sink})
	if err == nil {
		t.Fatal("Expected the batch to abort on write failure")
	}
	if code := errors.GetCode(err); code != errors.CodeIOFailure {
		t.Errorf("Expected code %s, got %s (%v)", errors.CodeIOFailure, code, err)
	}
	// No transactional guarantee: the partial output stays
	if len(sink.sequences) != 10 {
		t.Errorf("Expected 10 partial sequences, got %d", len(sink.sequences))
	}
}

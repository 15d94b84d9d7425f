package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"load", "validate", "replace"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline loads, validates and stores the advocate dataset.
type Pipeline struct {
	log     *slog.Logger
	writer  AdvocateWriter
	cfg     Config
	results map[string]PhaseResult

	records   []Record
	advocates []domain.Advocate
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, writer AdvocateWriter, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		writer:  writer,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes every phase in order and stops at the first failing one.
// Invalid records fail the validate phase so the store is never replaced
// with a partial dataset.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, phase := range allPhases {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "load":
			result = p.runLoad()
		case "validate":
			result = p.runValidate()
		case "replace":
			result = p.runReplace(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("%s: %w", phase, result.Err)
		}

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(allPhases)))
	return nil
}

func (p *Pipeline) runLoad() PhaseResult {
	records, err := LoadDataset(p.cfg.DatasetPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if len(records) == 0 {
		return PhaseResult{Err: errors.New("dataset is empty")}
	}
	p.records = records

	source := p.cfg.DatasetPath
	if source == "" {
		source = "embedded"
	}
	p.log.Info("dataset loaded", slog.String("source", source), slog.Int("records", len(records)))
	return PhaseResult{}
}

func (p *Pipeline) runValidate() PhaseResult {
	advocates, errs := NewValidator(p.cfg.PhoneRegion).ToDomain(p.records)
	for _, err := range errs {
		p.log.Warn("invalid record", slog.String("error", err.Error()))
	}
	if len(errs) > 0 {
		return PhaseResult{
			Errors: len(errs),
			Err:    fmt.Errorf("%d of %d records invalid: %w", len(errs), len(p.records), errors.Join(errs...)),
		}
	}
	p.advocates = advocates
	return PhaseResult{}
}

func (p *Pipeline) runReplace(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.advocates)}
	}

	n, err := p.writer.ReplaceAll(ctx, p.advocates)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("replace advocates: %w", err)}
	}
	return PhaseResult{Inserted: n}
}

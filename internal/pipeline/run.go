// Package pipeline validates a list of input files concurrently and returns
// their outcomes in input order.
package pipeline

import (
	"context"
	"runtime"
	"time"

	"github.com/jonathan/csb-validator/internal/ingestion"
	"github.com/jonathan/csb-validator/internal/logging"
	"github.com/jonathan/csb-validator/internal/types"
	"github.com/jonathan/csb-validator/internal/validation"
	"golang.org/x/sync/errgroup"
)

// Result pairs an input path with its outcome
type Result struct {
	Path    string
	Outcome types.FileOutcome
}

// Options configures a run
type Options struct {
	// Workers bounds the number of files validated at once; <= 0 means runtime.NumCPU()
	Workers int
	// Validator defaults to validation.New()
	Validator *validation.Validator
	// OnResult, when set, is called as each file finishes. Calls may come from
	// several goroutines and in completion order.
	OnResult func(index int, r Result)
}

// Run validates every input and returns one Result per input, in input order.
// Files are independent: a processing failure in one never affects another.
// Once ctx is done, files that have not started are reported as ProcessingFailed.
func Run(ctx context.Context, inputs []ingestion.Input, opts Options) []Result {
	validator := opts.Validator
	if validator == nil {
		validator = validation.New()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			r := Result{Path: in.Path, Outcome: validateInput(ctx, validator, in)}
			results[i] = r
			if opts.OnResult != nil {
				opts.OnResult(i, r)
			}
			return nil
		})
	}
	// tasks never fail; outcomes carry the errors
	_ = g.Wait()

	return results
}

func validateInput(ctx context.Context, v *validation.Validator, in ingestion.Input) types.FileOutcome {
	if in.Err != nil {
		logging.Debug().Str("file", in.Path).Err(in.Err).Msg("input not resolved")
		return types.Failed(in.Err.Error())
	}
	if err := ctx.Err(); err != nil {
		return types.Failed("validation cancelled: " + err.Error())
	}

	start := time.Now()
	outcome := v.ValidateFile(in.Path)
	logging.Debug().
		Str("file", in.Path).
		Stringer("status", outcome.Status).
		Int("violations", outcome.ViolationCount()).
		Dur("elapsed", time.Since(start)).
		Msg("file validated")
	return outcome
}

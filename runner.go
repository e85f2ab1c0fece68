package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PartResult struct {
	Answer  Answer        `json:"answer"`
	Elapsed time.Duration `json:"elapsed"`
}

type Result struct {
	Day     int        `json:"day"`
	PartOne PartResult `json:"part_one"`
	PartTwo PartResult `json:"part_two"`
}

type Runner struct {
	logger *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run solves both parts of day concurrently.
func (r *Runner) Run(ctx context.Context, day int, input string) (*Result, error) {
	s, err := lookup(day)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Day: day}
	var g errgroup.Group
	g.Go(func() error {
		return r.part(day, 1, s.PartOne, input, &res.PartOne)
	})
	g.Go(func() error {
		return r.part(day, 2, s.PartTwo, input, &res.PartTwo)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Runner) part(day, part int, fn Part, input string, out *PartResult) error {
	start := time.Now()
	a, err := fn(input)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.Warn("solve failed",
			zap.Int("day", day), zap.Int("part", part), zap.Error(err))
		return fmt.Errorf("day %d part %d: %w", day, part, err)
	}
	r.logger.Debug("solved",
		zap.Int("day", day),
		zap.Int("part", part),
		zap.Bool("solved", a.Solved),
		zap.Uint64("answer", a.Value),
		zap.Duration("elapsed", elapsed))
	*out = PartResult{Answer: a, Elapsed: elapsed}
	return nil
}

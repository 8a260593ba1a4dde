// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// validate.go - configuration checks run by New before any work starts.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No clamping: every out-of-domain value is an error.

package brkga

import (
	"fmt"
	"math"
)

// Slots is the composition of one generation.
type Slots struct {
	Elite     int
	Mutant    int
	Crossover int
}

// Total returns Elite+Mutant+Crossover, which always equals p.
func (s Slots) Total() int { return s.Elite + s.Mutant + s.Crossover }

// Plan computes n_elite=floor(p·pe), n_mutant=floor(p·pm) and gives the
// remainder to crossover.
//
// Errors: ErrPopulationSize, ErrFraction, ErrFractionSum, ErrNoElite.
//
// Complexity: O(1).
func Plan(p int, pe, pm float64) (Slots, error) {
	if p <= 0 {
		return Slots{}, fmt.Errorf("Plan: p=%d: %w", p, ErrPopulationSize)
	}
	if !(pe > 0 && pe < 1) || !(pm > 0 && pm < 1) {
		return Slots{}, fmt.Errorf("Plan: pe=%g pm=%g: %w", pe, pm, ErrFraction)
	}
	if pe+pm >= 1 {
		return Slots{}, fmt.Errorf("Plan: pe+pm=%g: %w", pe+pm, ErrFractionSum)
	}

	var s Slots
	s.Elite = int(math.Floor(float64(p) * pe))
	s.Mutant = int(math.Floor(float64(p) * pm))
	if s.Elite == 0 {
		return Slots{}, fmt.Errorf("Plan: floor(%d*%g)=0: %w", p, pe, ErrNoElite)
	}
	s.Crossover = p - s.Elite - s.Mutant

	return s, nil
}

// validateOptions checks every Options field and returns the slot plan.
//
// Complexity: O(1).
func validateOptions(opts Options) (Slots, error) {
	slots, err := Plan(opts.PopulationSize, opts.EliteFraction, opts.MutantFraction)
	if err != nil {
		return Slots{}, err
	}
	if !(opts.EliteBias >= 0 && opts.EliteBias <= 1) {
		return Slots{}, fmt.Errorf("validate: rhoe=%g: %w", opts.EliteBias, ErrFraction)
	}

	switch opts.Stop {
	case StopOnTime:
		if opts.TimeLimit <= 0 {
			return Slots{}, fmt.Errorf("validate: time limit %s: %w", opts.TimeLimit, ErrBudget)
		}
	case StopOnGenerations:
		if opts.Generations <= 0 {
			return Slots{}, fmt.Errorf("validate: generations %d: %w", opts.Generations, ErrBudget)
		}
	default:
		return Slots{}, fmt.Errorf("validate: stop policy %d: %w", opts.Stop, ErrBudget)
	}

	if opts.Workers < 0 {
		return Slots{}, fmt.Errorf("validate: workers %d: %w", opts.Workers, ErrWorkers)
	}

	if opts.Oracle != nil {
		if err = validateIntensify(opts.Intensify); err != nil {
			return Slots{}, err
		}
	}

	return slots, nil
}

// validateIntensify enforces k ≥ 1, na ∈ (0,1], a positive oracle limit,
// and key bands where every solution key outranks every other key while
// staying inside [0,1).
func validateIntensify(in IntensifyOptions) error {
	if in.Interval < 1 {
		return fmt.Errorf("validate: interval %d: %w", in.Interval, ErrIntensifyOptions)
	}
	if !(in.EliteFraction > 0 && in.EliteFraction <= 1) {
		return fmt.Errorf("validate: na=%g: %w", in.EliteFraction, ErrIntensifyOptions)
	}
	if in.OracleTimeLimit <= 0 {
		return fmt.Errorf("validate: oracle limit %s: %w", in.OracleTimeLimit, ErrIntensifyOptions)
	}
	if in.Jitter < 0 || in.LowKey < 0 || in.LowKey+in.Jitter > in.HighKey || in.HighKey+in.Jitter > 1 {
		return fmt.Errorf("validate: keys low=%g high=%g jitter=%g: %w",
			in.LowKey, in.HighKey, in.Jitter, ErrIntensifyOptions)
	}

	return nil
}

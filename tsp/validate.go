// Package tsp - option validation and per-instance parameter resolution.
//
// This file contains small, side-effect free helpers that:
//  1. Validate Options on their own (signs, NaN, tenure bounds, init policy).
//  2. Resolve Options against an instance size into the concrete thresholds
//     and tenure bounds the search runs with.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Fail fast: every error is reported before the first iteration.
package tsp

import (
	"fmt"
	"math"
)

// minAutoTenure is the floor of the automatic initial tenure max(5, n/10).
const minAutoTenure = 5

// params is the resolved, instance-specific configuration of one search.
type params struct {
	noImprove int // floor(alpha·n)
	adapt     int // floor(beta·noImprove)
	shake     int // == noImprove

	tenure    int
	requested int // initial tenure before clamping
	minTenure int
	maxTenure int
}

// validateOptions checks Options without looking at an instance.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	floats := [...]struct {
		name string
		v    float64
	}{
		{"alpha", o.Alpha},
		{"beta", o.Beta},
		{"decay factor", o.DecayFactor},
		{"lambda", o.Lambda},
		{"epsilon", o.Epsilon},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidOption, f.name, f.v)
		}
	}

	ints := [...]struct {
		name string
		v    int
	}{
		{"tabu length", o.TabuLength},
		{"min tenure", o.MinTenure},
		{"max tenure", o.MaxTenure},
		{"decay interval", o.DecayInterval},
		{"elite size", o.EliteSize},
		{"max iterations", o.MaxIterations},
	}
	for _, f := range ints {
		if f.v < 0 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidOption, f.name, f.v)
		}
	}

	if o.MaxTenure > 0 && o.MinTenure > o.MaxTenure {
		return fmt.Errorf("%w: min tenure %d > max tenure %d", ErrInvalidOption, o.MinTenure, o.MaxTenure)
	}

	switch o.Init {
	case InitSwaps, InitUniform, InitIdentity:
	default:
		return fmt.Errorf("%w: init policy %d", ErrInvalidOption, int(o.Init))
	}

	return nil
}

// resolve turns validated Options into concrete parameters for n points.
//
// Thresholds:
//
//	noImprove = floor(alpha·n), adapt = floor(beta·noImprove), shake = noImprove
//
// shake ≤ adapt yields ErrInvalidThresholds.
//
// Tenure: initial = TabuLength, or max(5, n/10) when 0; max = MaxTenure, or
// max(initial, n) when 0. The cap is further limited to max(1, (n-2)/2) so
// that, for n ≥ 4, at least one interior node is never tabu and the
// neighborhood cannot close entirely. min and initial are clamped into range.
//
// Complexity: O(1).
func resolve(o Options, n int) (params, error) {
	var p params

	p.noImprove = int(math.Floor(o.Alpha * float64(n)))
	p.adapt = int(math.Floor(o.Beta * float64(p.noImprove)))
	p.shake = p.noImprove
	if p.shake <= p.adapt {
		return params{}, fmt.Errorf("%w: shake %d, adapt %d (n=%d)", ErrInvalidThresholds, p.shake, p.adapt, n)
	}

	initial := o.TabuLength
	if initial == 0 {
		initial = n / 10
		if initial < minAutoTenure {
			initial = minAutoTenure
		}
	}

	p.requested = initial

	hi := o.MaxTenure
	if hi == 0 {
		hi = initial
		if n > hi {
			hi = n
		}
	}
	room := (n - 2) / 2
	if room < 1 {
		room = 1
	}
	if hi > room {
		hi = room
	}

	lo := o.MinTenure
	if lo > initial {
		lo = initial
	}
	if lo < 1 {
		lo = 1
	}
	if lo > hi {
		lo = hi
	}
	if initial > hi {
		initial = hi
	}
	if initial < lo {
		initial = lo
	}

	p.tenure = initial
	p.minTenure = lo
	p.maxTenure = hi

	return p, nil
}

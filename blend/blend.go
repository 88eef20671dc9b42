// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blend solves the two component mass balance
//
//	G = (WA*GA + WB*GB) / (WA + WB)
//
// for the unknown mass WB of the second component.
package blend

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ratioPrecision is the number of fractional digits kept for the mixing
// ratio (GT - GA) / (GB - GT). A nonzero ratio is at least 1e-16 for any pair of
// float64 grades in [0,100], so the mass is scaled exactly afterwards.
const ratioPrecision = 32

// Epsilon bounds the denominator GB - G below which the target is taken to
// equal component B's grade.
const Epsilon = 1e-4

var (
	ErrNotANumber      = errors.New("inputs must be finite numbers")
	ErrMassNotPositive = errors.New("mass must be positive")
	ErrNegativeGrade   = errors.New("grades cannot be negative")
	ErrGradeOver100    = errors.New("grades cannot exceed 100%")
	ErrSameGrade       = errors.New("grades must differ")
	ErrTargetIsGradeB  = errors.New("target equals component B's grade")
	ErrUnreachable     = errors.New("desired grade unreachable with these inputs")
)

// RangeError reports a target grade that cannot be reached by mixing only
// the two components.
type RangeError struct {
	Target float64
	Min    float64
	Max    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("desired grade (%g%%) must be between %g%% and %g%%", e.Target, e.Min, e.Max)
}

type Input struct {
	MassA       float64
	GradeA      float64 // percent
	GradeB      float64 // percent
	TargetGrade float64 // percent
}

type Result struct {
	Input

	MassB     float64
	TotalMass float64
	ShareA    float64 // percent
	ShareB    float64 // percent

	// Grade recomputed from both masses, for confirmation against the target.
	VerifiedGrade float64
}

var hundred = decimal.NewFromInt(100)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (in Input) validate() error {
	if !finite(in.MassA) || !finite(in.GradeA) || !finite(in.GradeB) || !finite(in.TargetGrade) {
		return ErrNotANumber
	}
	if in.MassA <= 0 {
		return ErrMassNotPositive
	}
	if in.GradeA < 0 || in.GradeB < 0 || in.TargetGrade < 0 {
		return ErrNegativeGrade
	}
	if in.GradeA > 100 || in.GradeB > 100 || in.TargetGrade > 100 {
		return ErrGradeOver100
	}
	lo, hi := math.Min(in.GradeA, in.GradeB), math.Max(in.GradeA, in.GradeB)
	if in.TargetGrade < lo || in.TargetGrade > hi {
		return &RangeError{Target: in.TargetGrade, Min: lo, Max: hi}
	}
	if in.GradeA == in.GradeB {
		return ErrSameGrade
	}
	return nil
}

// Solve validates in and returns the mass of component B needed to reach
// the target grade. The first failing check decides the error.
func Solve(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var (
		massA  = decimal.NewFromFloat(in.MassA)
		gradeA = decimal.NewFromFloat(in.GradeA)
		gradeB = decimal.NewFromFloat(in.GradeB)
		target = decimal.NewFromFloat(in.TargetGrade)
	)

	numerator := target.Sub(gradeA)
	denominator := gradeB.Sub(target)
	if denominator.Abs().LessThan(decimal.NewFromFloat(Epsilon)) {
		return nil, ErrTargetIsGradeB
	}

	// Div would round to 16 fractional digits and flush tiny masses to zero.
	ratio := numerator.DivRound(denominator, ratioPrecision)
	massB := massA.Mul(ratio)
	if massB.IsNegative() || (massB.IsZero() && !numerator.IsZero()) {
		return nil, ErrUnreachable
	}

	total := massA.Add(massB)
	verified := massA.Mul(gradeA).Add(massB.Mul(gradeB)).Div(total)

	return &Result{
		Input:         in,
		MassB:         massB.InexactFloat64(),
		TotalMass:     total.InexactFloat64(),
		ShareA:        massA.Div(total).Mul(hundred).InexactFloat64(),
		ShareB:        massB.Div(total).Mul(hundred).InexactFloat64(),
		VerifiedGrade: verified.InexactFloat64(),
	}, nil
}

// Breakdown lists the substitution steps that lead to MassB.
func (r *Result) Breakdown() []string {
	var (
		massA  = decimal.NewFromFloat(r.MassA)
		gradeA = decimal.NewFromFloat(r.GradeA)
		gradeB = decimal.NewFromFloat(r.GradeB)
		target = decimal.NewFromFloat(r.TargetGrade)
	)
	return []string{
		"WB = WA × (G - GA) / (GB - G)",
		fmt.Sprintf("WB = %s × (%s - %s) / (%s - %s)", massA, target, gradeA, gradeB, target),
		fmt.Sprintf("WB = %s × %s / %s", massA, target.Sub(gradeA).StringFixed(2), gradeB.Sub(target).StringFixed(2)),
		fmt.Sprintf("WB = %s", decimal.NewFromFloat(r.MassB).StringFixed(2)),
	}
}

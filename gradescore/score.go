// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradescore

import "math"

// Nearest prefers producers at or above the requirement, closest grade first.
type Nearest struct{}

func (Nearest) Score(grade, required float64) Score {
	return Score{
		Meets:    grade >= required,
		Distance: math.Abs(required - grade),
	}
}

type bandedScorer struct {
	orig Scorer
	sens float64
}

// NewBanded groups distances into buckets of width sensitivity, so grades
// that differ by less than a bucket keep their input order.
func NewBanded(orig Scorer, sensitivity float64) Scorer {
	if sensitivity <= 0 {
		return orig
	}
	return &bandedScorer{orig: orig, sens: sensitivity}
}

func (s *bandedScorer) Score(grade, required float64) Score {
	sc := s.orig.Score(grade, required)
	sc.Distance = math.Floor(sc.Distance/s.sens) * s.sens
	return sc
}

type tolerantScorer struct {
	orig Scorer
	tol  float64
}

// NewTolerant treats a grade up to tolerance points below the requirement
// as meeting it.
func NewTolerant(orig Scorer, tolerance float64) Scorer {
	if tolerance <= 0 {
		return orig
	}
	return &tolerantScorer{orig: orig, tol: tolerance}
}

func (s *tolerantScorer) Score(grade, required float64) Score {
	sc := s.orig.Score(grade, required)
	if !sc.Meets && required-grade <= s.tol {
		sc.Meets = true
	}
	return sc
}

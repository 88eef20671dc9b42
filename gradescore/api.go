// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradescore ranks the material grade of a producer against the
// grade a consumer requires.
package gradescore

type Score struct {
	Meets    bool    // grade satisfies the requirement
	Distance float64 // non-negative, smaller is a closer match
}

type Scorer interface {
	Score(grade, required float64) Score
}

// Less reports whether a ranks before b: producers that meet the
// requirement come first, then the closer grade.
func Less(a, b Score) bool {
	if a.Meets != b.Meets {
		return a.Meets
	}
	return a.Distance < b.Distance
}

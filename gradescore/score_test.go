// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradescore

import (
	"testing"
)

func TestNearest(t *testing.T) {
	cases := []struct {
		name     string
		grade    float64
		required float64
		want     Score
	}{
		{"Above", 30, 25, Score{Meets: true, Distance: 5}},
		{"Equal", 25, 25, Score{Meets: true, Distance: 0}},
		{"Below", 10, 25, Score{Meets: false, Distance: 15}},
		{"ZeroRequirement", 0, 0, Score{Meets: true, Distance: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Nearest{}.Score(c.grade, c.required)
			if got != c.want {
				t.Errorf("Score(%v, %v) = %+v, want %+v", c.grade, c.required, got, c.want)
			}
		})
	}
}

func TestLess(t *testing.T) {
	cases := []struct {
		name string
		a, b Score
		want bool
	}{
		{"MeetsBeforeMiss", Score{true, 40}, Score{false, 1}, true},
		{"MissAfterMeets", Score{false, 1}, Score{true, 40}, false},
		{"CloserFirst", Score{true, 1}, Score{true, 2}, true},
		{"FartherLater", Score{false, 3}, Score{false, 2}, false},
		{"EqualNotLess", Score{true, 2}, Score{true, 2}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Less(c.a, c.b); got != c.want {
				t.Errorf("Less(%+v, %+v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestBanded(t *testing.T) {
	s := NewBanded(Nearest{}, 5)

	a := s.Score(31, 30) // distance 1
	b := s.Score(34, 30) // distance 4
	if Less(a, b) || Less(b, a) {
		t.Errorf("Expected same band, got %+v and %+v", a, b)
	}

	c := s.Score(36, 30) // distance 6
	if !Less(a, c) {
		t.Errorf("Expected %+v before %+v", a, c)
	}

	if _, ok := NewBanded(Nearest{}, 0).(Nearest); !ok {
		t.Error("Expected zero sensitivity to return the original scorer")
	}
}

func TestTolerant(t *testing.T) {
	s := NewTolerant(Nearest{}, 2)

	if got := s.Score(24, 25); !got.Meets || got.Distance != 1 {
		t.Errorf("Expected 24 to meet 25 within tolerance, got %+v", got)
	}
	if got := s.Score(22, 25); got.Meets {
		t.Errorf("Expected 22 to miss 25, got %+v", got)
	}
	if got := s.Score(30, 25); !got.Meets {
		t.Errorf("Expected 30 to meet 25, got %+v", got)
	}

	if _, ok := NewTolerant(Nearest{}, -1).(Nearest); !ok {
		t.Error("Expected non-positive tolerance to return the original scorer")
	}
}

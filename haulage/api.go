// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package haulage uses minealloc to plan truck haulage from excavators to
// processing plants.
package haulage

import (
	"github.com/someonegg/minealloc"
	"go.uber.org/zap"
)

type Excavator struct {
	Name   string  `json:"name" yaml:"name"`
	Grade  float64 `json:"grade" yaml:"grade"` // percent
	Trucks int64   `json:"trucks" yaml:"trucks"`
}

type Plant struct {
	Name          string  `json:"name" yaml:"name"`
	RequiredGrade float64 `json:"required_grade" yaml:"required_grade"` // percent
	Capacity      int64   `json:"capacity" yaml:"capacity"`             // trucks
}

type Scenario struct {
	Excavators []*Excavator `json:"excavators" yaml:"excavators"`
	Plants     []*Plant     `json:"plants" yaml:"plants"`
}

// Row is one line of the allocation table.
type Row struct {
	ExcavatorID       string  `json:"excavator_id"`
	Excavator         string  `json:"excavator"`
	ExcavatorGrade    float64 `json:"excavator_grade"`
	PlantID           string  `json:"plant_id"`
	Plant             string  `json:"plant"`
	RequiredGrade     float64 `json:"required_grade"`
	Trucks            int64   `json:"trucks"`
	GradeMet          bool    `json:"grade_met"`
	GradeContribution float64 `json:"grade_contribution,omitempty"`
}

type PlantSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Allocated     int64  `json:"allocated"`
	Capacity      int64  `json:"capacity"`
	Shortfall     int64  `json:"shortfall"`
	UnderCapacity bool   `json:"under_capacity"`
	BelowGrade    int64  `json:"below_grade"` // trucks from excavators under the requirement
	Unsatisfied   bool   `json:"unsatisfied"`
}

type ExcavatorSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Trucks int64  `json:"trucks"`
	Used   int64  `json:"used"`
	Unused int64  `json:"unused"`
}

type Summary struct {
	ExcavatorsCount int   `json:"excavators_count"`
	PlantsCount     int   `json:"plants_count"`
	TrucksAvailable int64 `json:"trucks_available"`
	TrucksNeeded    int64 `json:"trucks_needed"`
	TrucksAssigned  int64 `json:"trucks_assigned"`
	TrucksUnused    int64 `json:"trucks_unused"`
	TrucksShort     int64 `json:"trucks_short"`

	Plants     []PlantSummary     `json:"plants"`
	Excavators []ExcavatorSummary `json:"excavators"`
}

type Plan struct {
	Strategy minealloc.Strategy
	Rows     []Row              `json:"rows"`
	Summary  Summary            `json:"summary"`

	Result *minealloc.Result `json:"-"`
}

const (
	DefaultStrategy    = minealloc.StrategyGreedy
	DefaultSensitivity = 0.0
	DefaultTolerance   = 0.0
)

type Planner struct {
	Strategy minealloc.Strategy

	// Width of the grade bands the greedy strategy treats as equally close.
	Sensitivity *float64

	// Points below a requirement the greedy strategy still ranks as meeting it.
	Tolerance *float64

	Logger *zap.Logger

	sens   float64
	tol    float64
	logger *zap.Logger
}

// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package haulage

import (
	"fmt"
	"math"

	"github.com/someonegg/minealloc"
	"github.com/someonegg/minealloc/gradescore"
	"github.com/someonegg/minealloc/registry"
	"go.uber.org/zap"
)

func (p *Planner) init() {
	if p.Strategy == "" {
		p.Strategy = DefaultStrategy
	}

	if p.Sensitivity == nil {
		p.sens = DefaultSensitivity
	} else {
		p.sens = *p.Sensitivity
	}

	if p.Tolerance == nil {
		p.tol = DefaultTolerance
	} else {
		p.tol = *p.Tolerance
	}

	if p.Logger == nil {
		p.logger = zap.NewNop()
	} else {
		p.logger = p.Logger
	}
}

// Matcher builds the matcher of the configured strategy.
func (p *Planner) Matcher() (minealloc.Matcher, error) {
	p.init()

	var scorer gradescore.Scorer = gradescore.Nearest{}
	scorer = gradescore.NewTolerant(scorer, p.tol)
	scorer = gradescore.NewBanded(scorer, p.sens)

	return minealloc.NewMatcher(p.Strategy, scorer, p.logger)
}

func (p *Planner) Plan(s *Scenario) (*Plan, error) {
	matcher, err := p.Matcher()
	if err != nil {
		return nil, err
	}

	reg := registry.New(registry.WithIDGenerator(registry.SequentialIDs()))
	p.Load(reg, s)

	p.logger.Debug("plan",
		zap.String("strategy", string(p.Strategy)),
		zap.Int("excavators", len(s.Excavators)),
		zap.Int("plants", len(s.Plants)))

	result, err := reg.Calculate(matcher)
	if err != nil {
		return nil, err
	}

	producers, consumers := reg.Producers(), reg.Consumers()
	return &Plan{
		Strategy: p.Strategy,
		Rows:     Rows(producers, consumers, result),
		Summary:  Summarize(producers, consumers, result),
		Result:   result,
	}, nil
}

// Load clamps the scenario into range and adds it to reg.
func (p *Planner) Load(reg *registry.Registry, s *Scenario) {
	p.init()

	for i, e := range s.Excavators {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("excavator-%d", i+1)
		}
		grade, trucks := p.ClampExcavator(name, e.Grade, e.Trucks)
		reg.AddProducer(name, grade, trucks)
	}
	for i, pl := range s.Plants {
		name := pl.Name
		if name == "" {
			name = fmt.Sprintf("plant-%d", i+1)
		}
		grade, capacity := p.ClampPlant(name, pl.RequiredGrade, pl.Capacity)
		reg.AddConsumer(name, grade, capacity)
	}
}

// ClampExcavator brings an excavator's grade into [0,100] and its trucks
// into [0,∞), or [0,3] under the proportional strategy.
func (p *Planner) ClampExcavator(name string, grade float64, trucks int64) (float64, int64) {
	p.init()

	g := clampGrade(grade)
	if g != grade {
		p.logger.Warn("excavator grade clamped",
			zap.String("excavator", name), zap.Float64("from", grade), zap.Float64("to", g))
	}

	n := trucks
	if n < 0 {
		n = 0
	}
	if p.Strategy == minealloc.StrategyProportional && n > minealloc.MaxProportionalTrucks {
		n = minealloc.MaxProportionalTrucks
	}
	if n != trucks {
		p.logger.Warn("excavator trucks clamped",
			zap.String("excavator", name), zap.Int64("from", trucks), zap.Int64("to", n))
	}

	return g, n
}

// ClampPlant brings a plant's grade into [0,100] and its capacity to at
// least one truck.
func (p *Planner) ClampPlant(name string, grade float64, capacity int64) (float64, int64) {
	p.init()

	g := clampGrade(grade)
	if g != grade {
		p.logger.Warn("plant grade clamped",
			zap.String("plant", name), zap.Float64("from", grade), zap.Float64("to", g))
	}

	c := capacity
	if c < 1 {
		c = 1
		p.logger.Warn("plant capacity clamped",
			zap.String("plant", name), zap.Int64("from", capacity), zap.Int64("to", c))
	}

	return g, c
}

func clampGrade(g float64) float64 {
	if math.IsNaN(g) || g < 0 {
		return 0
	}
	if g > 100 {
		return 100
	}
	return g
}

// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minealloc provides truck allocation algorithms that match
// material producers (excavators) to consumers (plants) by grade.
package minealloc

import (
	"errors"
	"fmt"

	"github.com/someonegg/minealloc/gradescore"
	"go.uber.org/zap"
)

type Matcher interface {
	Match(producers []Producer, consumers []Consumer) (*Result, error)
}

type Producer struct {
	ID     string
	Name   string
	Grade  float64 // percent
	Trucks int64
}

type Consumer struct {
	ID            string
	Name          string
	RequiredGrade float64 // percent
	Capacity      int64   // trucks needed
}

type Allocation struct {
	ProducerID string
	ConsumerID string
	Units      int64

	// Only set by the proportional strategy.
	GradeContribution float64

	MeetsGrade bool
}

type Result struct {
	Strategy    Strategy
	Allocations []Allocation

	// Consumers that were refused outright, in input order.
	Unsatisfied []string
}

type Strategy string

const (
	StrategyGreedy       Strategy = "greedy"
	StrategyProportional Strategy = "proportional"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyGreedy, StrategyProportional:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// UnitsByProducer sums the assigned units of each producer.
func (r *Result) UnitsByProducer() map[string]int64 {
	sums := make(map[string]int64)
	for _, a := range r.Allocations {
		sums[a.ProducerID] += a.Units
	}
	return sums
}

// UnitsByConsumer sums the assigned units of each consumer.
func (r *Result) UnitsByConsumer() map[string]int64 {
	sums := make(map[string]int64)
	for _, a := range r.Allocations {
		sums[a.ConsumerID] += a.Units
	}
	return sums
}

// Filter returns a copy of r holding only the allocations keep accepts.
func (r *Result) Filter(keep func(a Allocation) bool) *Result {
	out := &Result{Strategy: r.Strategy}
	for _, a := range r.Allocations {
		if keep(a) {
			out.Allocations = append(out.Allocations, a)
		}
	}
	out.Unsatisfied = append(out.Unsatisfied, r.Unsatisfied...)
	return out
}

// Without returns a copy of r that no longer mentions id, either as a
// producer or as a consumer.
func (r *Result) Without(id string) *Result {
	out := r.Filter(func(a Allocation) bool {
		return a.ProducerID != id && a.ConsumerID != id
	})
	kept := out.Unsatisfied[:0]
	for _, cid := range out.Unsatisfied {
		if cid != id {
			kept = append(kept, cid)
		}
	}
	out.Unsatisfied = kept
	return out
}

// NewMatcher returns the matcher implementing strategy s. scorer only
// applies to the greedy strategy and may be nil.
func NewMatcher(s Strategy, scorer gradescore.Scorer, logger *zap.Logger) (Matcher, error) {
	switch s {
	case StrategyGreedy:
		return GreedyMatcher(scorer, logger), nil
	case StrategyProportional:
		return ProportionalMatcher(logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
}

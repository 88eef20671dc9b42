// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minealloc

import (
	"fmt"
	"math"
	"sort"

	"github.com/someonegg/minealloc/gradescore"
	"go.uber.org/zap"
)

type greedyMatcher struct {
	scorer gradescore.Scorer
	logger *zap.Logger
}

// GreedyMatcher serves the highest required grade first, each time taking
// trucks from the best ranked producers until the capacity is filled.
func GreedyMatcher(scorer gradescore.Scorer, logger *zap.Logger) Matcher {
	if scorer == nil {
		scorer = gradescore.Nearest{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return greedyMatcher{scorer, logger}
}

type greedyProducer struct {
	Producer
	rest int64
}

type greedyCandidate struct {
	producer *greedyProducer
	score    gradescore.Score
}

func (m greedyMatcher) Match(producers []Producer, consumers []Consumer) (*Result, error) {
	if err := validate(producers, consumers); err != nil {
		return nil, err
	}

	pl := make([]greedyProducer, len(producers))
	for i := range producers {
		pl[i] = greedyProducer{Producer: producers[i], rest: producers[i].Trucks}
	}

	cl := make([]Consumer, len(consumers))
	copy(cl, consumers)
	sort.SliceStable(cl, func(i, j int) bool {
		return cl[i].RequiredGrade > cl[j].RequiredGrade
	})

	result := &Result{Strategy: StrategyGreedy}
	candidates := make([]greedyCandidate, 0, len(pl))

	for ci := range cl {
		consumer := &cl[ci]

		candidates = candidates[:0]
		for i := range pl {
			if pl[i].rest > 0 {
				candidates = append(candidates, greedyCandidate{
					producer: &pl[i],
					score:    m.scorer.Score(pl[i].Grade, consumer.RequiredGrade),
				})
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return gradescore.Less(candidates[i].score, candidates[j].score)
		})

		demandRest := consumer.Capacity
		for _, c := range candidates {
			if demandRest <= 0 {
				break
			}

			producer := c.producer
			amount := minInt64(producer.rest, demandRest)
			if amount <= 0 {
				continue
			}

			result.Allocations = append(result.Allocations, Allocation{
				ProducerID: producer.ID,
				ConsumerID: consumer.ID,
				Units:      amount,
				MeetsGrade: producer.Grade >= consumer.RequiredGrade,
			})

			m.logger.Debug("assign trucks",
				zap.String("producer", producer.ID),
				zap.String("consumer", consumer.ID),
				zap.Int64("units", amount),
				zap.Bool("meets", c.score.Meets),
				zap.Float64("distance", c.score.Distance))

			producer.rest -= amount
			demandRest -= amount
		}

		if demandRest > 0 {
			m.logger.Debug("consumer under capacity",
				zap.String("consumer", consumer.ID),
				zap.Int64("capacity", consumer.Capacity),
				zap.Int64("shortfall", demandRest))
		}
	}

	return result, nil
}

func validGrade(g float64) bool {
	return !math.IsNaN(g) && g >= 0 && g <= 100
}

func validate(producers []Producer, consumers []Consumer) error {
	for _, p := range producers {
		if !validGrade(p.Grade) {
			return fmt.Errorf("%w: producer %s grade %v outside [0,100]", ErrInvalidInput, p.ID, p.Grade)
		}
		if p.Trucks < 0 {
			return fmt.Errorf("%w: producer %s has %d trucks", ErrInvalidInput, p.ID, p.Trucks)
		}
	}
	for _, c := range consumers {
		if !validGrade(c.RequiredGrade) {
			return fmt.Errorf("%w: consumer %s grade %v outside [0,100]", ErrInvalidInput, c.ID, c.RequiredGrade)
		}
		if c.Capacity < 1 {
			return fmt.Errorf("%w: consumer %s capacity %d below 1", ErrInvalidInput, c.ID, c.Capacity)
		}
	}
	return nil
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

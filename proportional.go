// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minealloc

import (
	"math"

	"go.uber.org/zap"
)

// MaxProportionalTrucks is the per producer truck cap of the proportional
// strategy. A producer's utilization is trucks / MaxProportionalTrucks.
const MaxProportionalTrucks = 3

type proportionalMatcher struct {
	logger *zap.Logger
}

// ProportionalMatcher splits every satisfiable consumer's grade demand
// across all producers in proportion to their effective capacity
// (grade * utilization), regardless of how close the grades are.
//
// Units are rounded per producer and never reconciled, so the units a
// consumer receives may differ slightly from an exact split.
func ProportionalMatcher(logger *zap.Logger) Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return proportionalMatcher{logger}
}

func (m proportionalMatcher) Match(producers []Producer, consumers []Consumer) (*Result, error) {
	avail := make([]int64, len(producers))
	effective := make([]float64, len(producers))
	total := 0.0
	for i, p := range producers {
		avail[i] = maxInt64(0, minInt64(p.Trucks, MaxProportionalTrucks))
		effective[i] = p.Grade * float64(avail[i]) / MaxProportionalTrucks
		total += effective[i]
	}

	result := &Result{Strategy: StrategyProportional}

	for _, consumer := range consumers {
		if total <= 0 || total < consumer.RequiredGrade {
			result.Unsatisfied = append(result.Unsatisfied, consumer.ID)
			m.logger.Debug("consumer cannot be satisfied",
				zap.String("consumer", consumer.ID),
				zap.Float64("required", consumer.RequiredGrade),
				zap.Float64("total_capacity", total))
			continue
		}

		demandRest := consumer.Capacity
		for i, producer := range producers {
			if effective[i] <= 0 || avail[i] <= 0 || demandRest <= 0 {
				continue
			}

			contribution := effective[i] / total * consumer.RequiredGrade
			units := int64(math.Round(contribution / producer.Grade * MaxProportionalTrucks))
			units = maxInt64(0, minInt64(units, minInt64(avail[i], demandRest)))
			if units <= 0 {
				continue
			}

			result.Allocations = append(result.Allocations, Allocation{
				ProducerID:        producer.ID,
				ConsumerID:        consumer.ID,
				Units:             units,
				GradeContribution: contribution,
				MeetsGrade:        producer.Grade >= consumer.RequiredGrade,
			})

			m.logger.Debug("assign trucks",
				zap.String("producer", producer.ID),
				zap.String("consumer", consumer.ID),
				zap.Int64("units", units),
				zap.Float64("contribution", contribution))

			avail[i] -= units
			demandRest -= units
		}
	}

	return result, nil
}

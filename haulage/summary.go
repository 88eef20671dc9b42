// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package haulage

import (
	"github.com/someonegg/minealloc"
)

// Rows renders result as table rows. Allocations naming an id that is not
// among producers or consumers are skipped.
func Rows(producers []minealloc.Producer, consumers []minealloc.Consumer, result *minealloc.Result) []Row {
	if result == nil {
		return nil
	}

	pm, cm := index(producers, consumers)

	rows := make([]Row, 0, len(result.Allocations))
	for _, a := range result.Allocations {
		producer, ok := pm[a.ProducerID]
		if !ok {
			continue
		}
		consumer, ok := cm[a.ConsumerID]
		if !ok {
			continue
		}
		rows = append(rows, Row{
			ExcavatorID:       producer.ID,
			Excavator:         producer.Name,
			ExcavatorGrade:    producer.Grade,
			PlantID:           consumer.ID,
			Plant:             consumer.Name,
			RequiredGrade:     consumer.RequiredGrade,
			Trucks:            a.Units,
			GradeMet:          producer.Grade >= consumer.RequiredGrade,
			GradeContribution: a.GradeContribution,
		})
	}
	return rows
}

// Summarize reports how far each plant was served and how many trucks each
// excavator left unused. Under the proportional strategy an excavator can
// never dispatch more than minealloc.MaxProportionalTrucks, so its fleet is
// counted at that cap.
func Summarize(producers []minealloc.Producer, consumers []minealloc.Consumer, result *minealloc.Result) Summary {
	summ := Summary{
		ExcavatorsCount: len(producers),
		PlantsCount:     len(consumers),
		Plants:          make([]PlantSummary, 0, len(consumers)),
		Excavators:      make([]ExcavatorSummary, 0, len(producers)),
	}

	pm, cm := index(producers, consumers)

	allocated := make(map[string]int64)
	belowGrade := make(map[string]int64)
	used := make(map[string]int64)
	unsatisfied := make(map[string]bool)

	if result != nil {
		for _, a := range result.Allocations {
			producer, ok := pm[a.ProducerID]
			if !ok {
				continue
			}
			consumer, ok := cm[a.ConsumerID]
			if !ok {
				continue
			}
			allocated[consumer.ID] += a.Units
			used[producer.ID] += a.Units
			if producer.Grade < consumer.RequiredGrade {
				belowGrade[consumer.ID] += a.Units
			}
		}
		for _, id := range result.Unsatisfied {
			unsatisfied[id] = true
		}
	}

	for _, c := range consumers {
		ps := PlantSummary{
			ID:          c.ID,
			Name:        c.Name,
			Allocated:   allocated[c.ID],
			Capacity:    c.Capacity,
			BelowGrade:  belowGrade[c.ID],
			Unsatisfied: unsatisfied[c.ID],
		}
		if ps.Allocated < ps.Capacity {
			ps.Shortfall = ps.Capacity - ps.Allocated
			ps.UnderCapacity = true
		}
		summ.Plants = append(summ.Plants, ps)

		summ.TrucksNeeded += c.Capacity
		summ.TrucksAssigned += ps.Allocated
		summ.TrucksShort += ps.Shortfall
	}

	proportional := result != nil && result.Strategy == minealloc.StrategyProportional

	for _, p := range producers {
		trucks := p.Trucks
		if proportional && trucks > minealloc.MaxProportionalTrucks {
			trucks = minealloc.MaxProportionalTrucks
		}
		es := ExcavatorSummary{
			ID:     p.ID,
			Name:   p.Name,
			Trucks: trucks,
			Used:   used[p.ID],
		}
		if es.Used < es.Trucks {
			es.Unused = es.Trucks - es.Used
		}
		summ.Excavators = append(summ.Excavators, es)

		summ.TrucksAvailable += trucks
		summ.TrucksUnused += es.Unused
	}

	return summ
}

func index(producers []minealloc.Producer, consumers []minealloc.Consumer) (map[string]*minealloc.Producer, map[string]*minealloc.Consumer) {
	pm := make(map[string]*minealloc.Producer, len(producers))
	for i := range producers {
		pm[producers[i].ID] = &producers[i]
	}
	cm := make(map[string]*minealloc.Consumer, len(consumers))
	for i := range consumers {
		cm[consumers[i].ID] = &consumers[i]
	}
	return pm, cm
}

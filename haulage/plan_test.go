// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package haulage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/someonegg/minealloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestPlanner_Greedy(t *testing.T) {
	s := &Scenario{
		Excavators: []*Excavator{
			{Name: "P1", Grade: 30, Trucks: 2},
			{Name: "P2", Grade: 10, Trucks: 2},
		},
		Plants: []*Plant{
			{Name: "C1", RequiredGrade: 25, Capacity: 3},
		},
	}

	plan, err := (&Planner{}).Plan(s)
	require.NoError(t, err)

	assert.Equal(t, minealloc.StrategyGreedy, plan.Strategy)
	require.Len(t, plan.Rows, 2)
	assert.Equal(t, Row{
		ExcavatorID: "e-1", Excavator: "P1", ExcavatorGrade: 30,
		PlantID: "p-1", Plant: "C1", RequiredGrade: 25,
		Trucks: 2, GradeMet: true,
	}, plan.Rows[0])
	assert.Equal(t, "P2", plan.Rows[1].Excavator)
	assert.Equal(t, int64(1), plan.Rows[1].Trucks)
	assert.False(t, plan.Rows[1].GradeMet)

	summ := plan.Summary
	require.Len(t, summ.Plants, 1)
	assert.Equal(t, int64(3), summ.Plants[0].Allocated)
	assert.False(t, summ.Plants[0].UnderCapacity)
	assert.Equal(t, int64(1), summ.Plants[0].BelowGrade)

	require.Len(t, summ.Excavators, 2)
	assert.Equal(t, int64(0), summ.Excavators[0].Unused)
	assert.Equal(t, int64(1), summ.Excavators[1].Unused)
	assert.Equal(t, int64(4), summ.TrucksAvailable)
	assert.Equal(t, int64(3), summ.TrucksAssigned)
	assert.Equal(t, int64(1), summ.TrucksUnused)
	assert.Equal(t, int64(0), summ.TrucksShort)
}

func TestPlanner_UnderCapacity(t *testing.T) {
	s := &Scenario{
		Excavators: []*Excavator{{Name: "E", Grade: 50, Trucks: 1}},
		Plants:     []*Plant{{Name: "P", RequiredGrade: 40, Capacity: 4}},
	}

	plan, err := (&Planner{}).Plan(s)
	require.NoError(t, err)

	ps := plan.Summary.Plants[0]
	assert.True(t, ps.UnderCapacity)
	assert.Equal(t, int64(3), ps.Shortfall)
	assert.Equal(t, int64(3), plan.Summary.TrucksShort)
}

func TestPlanner_Proportional(t *testing.T) {
	s := &Scenario{
		Excavators: []*Excavator{{Name: "E", Grade: 20, Trucks: 7}},
		Plants: []*Plant{
			{Name: "ok", RequiredGrade: 20, Capacity: 5},
			{Name: "too-high", RequiredGrade: 60, Capacity: 5},
		},
	}

	core, logs := observer.New(zap.WarnLevel)
	plan, err := (&Planner{Strategy: minealloc.StrategyProportional, Logger: zap.New(core)}).Plan(s)
	require.NoError(t, err)

	require.Len(t, plan.Rows, 1)
	assert.Equal(t, int64(3), plan.Rows[0].Trucks)
	assert.InDelta(t, 20.0, plan.Rows[0].GradeContribution, 1e-9)

	assert.False(t, plan.Summary.Plants[0].Unsatisfied)
	assert.True(t, plan.Summary.Plants[1].Unsatisfied)
	assert.Equal(t, int64(3), plan.Summary.Excavators[0].Trucks)

	assert.Equal(t, 1, logs.FilterMessage("excavator trucks clamped").Len())
}

func TestPlanner_Clamp(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := &Planner{Logger: zap.New(core)}

	g, n := p.ClampExcavator("e", 120, -3)
	assert.Equal(t, 100.0, g)
	assert.Equal(t, int64(0), n)

	g, c := p.ClampPlant("p", -5, 0)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, int64(1), c)

	g, n = p.ClampExcavator("e", 55.5, 12)
	assert.Equal(t, 55.5, g)
	assert.Equal(t, int64(12), n)

	assert.Equal(t, 4, logs.Len())
}

func TestPlanner_Options(t *testing.T) {
	s := &Scenario{
		Excavators: []*Excavator{
			{Name: "over", Grade: 35, Trucks: 2},
			{Name: "under", Grade: 29, Trucks: 2},
		},
		Plants: []*Plant{{Name: "P", RequiredGrade: 30, Capacity: 2}},
	}

	plan, err := (&Planner{}).Plan(s)
	require.NoError(t, err)
	assert.Equal(t, "over", plan.Rows[0].Excavator)

	plan, err = (&Planner{Tolerance: float64Ptr(1.5)}).Plan(s)
	require.NoError(t, err)
	assert.Equal(t, "under", plan.Rows[0].Excavator)
	assert.False(t, plan.Rows[0].GradeMet)

	_, err = (&Planner{Strategy: "nope"}).Plan(s)
	assert.ErrorIs(t, err, minealloc.ErrUnknownStrategy)
}

func TestPlanner_DefaultNames(t *testing.T) {
	s := &Scenario{
		Excavators: []*Excavator{{Grade: 10, Trucks: 1}},
		Plants:     []*Plant{{RequiredGrade: 10, Capacity: 1}},
	}

	plan, err := (&Planner{}).Plan(s)
	require.NoError(t, err)
	assert.Equal(t, "excavator-1", plan.Rows[0].Excavator)
	assert.Equal(t, "plant-1", plan.Rows[0].Plant)
}

func TestSummarize_SkipsUnknownIDs(t *testing.T) {
	producers := []minealloc.Producer{{ID: "e-1", Name: "E", Grade: 10, Trucks: 2}}
	consumers := []minealloc.Consumer{{ID: "p-1", Name: "P", RequiredGrade: 5, Capacity: 2}}
	result := &minealloc.Result{
		Allocations: []minealloc.Allocation{
			{ProducerID: "e-1", ConsumerID: "p-1", Units: 1},
			{ProducerID: "e-gone", ConsumerID: "p-1", Units: 1},
			{ProducerID: "e-1", ConsumerID: "p-gone", Units: 1},
		},
	}

	summ := Summarize(producers, consumers, result)
	assert.Equal(t, int64(1), summ.Plants[0].Allocated)
	assert.Equal(t, int64(1), summ.Excavators[0].Used)
	assert.Len(t, Rows(producers, consumers, result), 1)

	empty := Summarize(producers, consumers, nil)
	assert.Equal(t, int64(2), empty.Plants[0].Shortfall)
	assert.Equal(t, int64(2), empty.Excavators[0].Unused)
	assert.Nil(t, Rows(producers, consumers, nil))
}

func TestSummarize_ProportionalCapsTrucks(t *testing.T) {
	producers := []minealloc.Producer{
		{ID: "e-1", Name: "E1", Grade: 30, Trucks: 5},
		{ID: "e-2", Name: "E2", Grade: 30, Trucks: 2},
	}
	consumers := []minealloc.Consumer{{ID: "p-1", Name: "P", RequiredGrade: 20, Capacity: 5}}
	allocations := []minealloc.Allocation{
		{ProducerID: "e-1", ConsumerID: "p-1", Units: 3},
		{ProducerID: "e-2", ConsumerID: "p-1", Units: 2},
	}

	summ := Summarize(producers, consumers, &minealloc.Result{
		Strategy:    minealloc.StrategyProportional,
		Allocations: allocations,
	})
	assert.Equal(t, int64(3), summ.Excavators[0].Trucks)
	assert.Equal(t, int64(0), summ.Excavators[0].Unused)
	assert.Equal(t, int64(2), summ.Excavators[1].Trucks)
	assert.Equal(t, int64(5), summ.TrucksAvailable)
	assert.Equal(t, int64(0), summ.TrucksUnused)

	greedy := Summarize(producers, consumers, &minealloc.Result{
		Strategy:    minealloc.StrategyGreedy,
		Allocations: allocations,
	})
	assert.Equal(t, int64(5), greedy.Excavators[0].Trucks)
	assert.Equal(t, int64(2), greedy.Excavators[0].Unused)
	assert.Equal(t, int64(2), greedy.TrucksUnused)
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()

	jsonFile := filepath.Join(dir, "mine.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{
		"excavators": [{"name": "E1", "grade": 30, "trucks": 2}],
		"plants": [{"name": "P1", "required_grade": 25, "capacity": 3}]
	}`), 0644))

	yamlFile := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte(`
excavators:
  - name: E1
    grade: 30
    trucks: 2
plants:
  - name: P1
    required_grade: 25
    capacity: 3
`), 0644))

	want := &Scenario{
		Excavators: []*Excavator{{Name: "E1", Grade: 30, Trucks: 2}},
		Plants:     []*Plant{{Name: "P1", RequiredGrade: 25, Capacity: 3}},
	}

	for _, file := range []string{jsonFile, yamlFile} {
		s, err := LoadScenario(file)
		require.NoError(t, err, file)
		assert.Equal(t, want, s, file)
	}

	_, err := ParseScenario([]byte(`{"excavators": [{"color": "red"}]}`), ".json")
	assert.Error(t, err)

	_, err = ParseScenario([]byte(`excavators: [null]`), ".yml")
	assert.Error(t, err)

	_, err = ParseScenario(nil, ".toml")
	assert.Error(t, err)

	_, err = LoadScenario(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

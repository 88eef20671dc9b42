// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry holds the producers and consumers entered during a
// session together with the last computed allocation.
package registry

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/someonegg/minealloc"
)

var ErrNotFound = errors.New("entity not found")

// IDGenerator returns a fresh id for the given kind prefix ("e" for
// producers, "p" for consumers). Ids only need to be unique.
type IDGenerator interface {
	NextID(kind string) string
}

type uuidGenerator struct{}

func (uuidGenerator) NextID(kind string) string {
	return kind + "-" + uuid.NewString()
}

type sequentialGenerator struct {
	next map[string]int
}

// SequentialIDs numbers ids per kind: e-1, e-2, p-1...
func SequentialIDs() IDGenerator {
	return &sequentialGenerator{next: make(map[string]int)}
}

func (g *sequentialGenerator) NextID(kind string) string {
	g.next[kind]++
	return kind + "-" + strconv.Itoa(g.next[kind])
}

type Option func(r *Registry)

func WithIDGenerator(gen IDGenerator) Option {
	return func(r *Registry) {
		r.ids = gen
	}
}

// Registry is owned by a single session and is not safe for concurrent use.
type Registry struct {
	ids IDGenerator

	producers []minealloc.Producer
	consumers []minealloc.Consumer
	result    *minealloc.Result
}

func New(opts ...Option) *Registry {
	r := &Registry{ids: uuidGenerator{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddProducer appends an excavator and returns its id. Values are stored as
// given; range checks belong to the input boundary.
func (r *Registry) AddProducer(name string, grade float64, trucks int64) string {
	id := r.ids.NextID("e")
	r.producers = append(r.producers, minealloc.Producer{
		ID:     id,
		Name:   name,
		Grade:  grade,
		Trucks: trucks,
	})
	return id
}

// AddConsumer appends a plant and returns its id.
func (r *Registry) AddConsumer(name string, requiredGrade float64, capacity int64) string {
	id := r.ids.NextID("p")
	r.consumers = append(r.consumers, minealloc.Consumer{
		ID:            id,
		Name:          name,
		RequiredGrade: requiredGrade,
		Capacity:      capacity,
	})
	return id
}

// RemoveProducer deletes the producer and every stored allocation naming it.
func (r *Registry) RemoveProducer(id string) error {
	for i := range r.producers {
		if r.producers[i].ID == id {
			r.producers = append(r.producers[:i], r.producers[i+1:]...)
			r.purge(id)
			return nil
		}
	}
	return fmt.Errorf("producer %s: %w", id, ErrNotFound)
}

// RemoveConsumer deletes the consumer and every stored allocation naming it.
func (r *Registry) RemoveConsumer(id string) error {
	for i := range r.consumers {
		if r.consumers[i].ID == id {
			r.consumers = append(r.consumers[:i], r.consumers[i+1:]...)
			r.purge(id)
			return nil
		}
	}
	return fmt.Errorf("consumer %s: %w", id, ErrNotFound)
}

// Remove deletes whichever entity carries id.
func (r *Registry) Remove(id string) error {
	if err := r.RemoveProducer(id); err == nil {
		return nil
	}
	if err := r.RemoveConsumer(id); err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", id, ErrNotFound)
}

func (r *Registry) purge(id string) {
	if r.result != nil {
		r.result = r.result.Without(id)
	}
}

func (r *Registry) Producers() []minealloc.Producer {
	return append([]minealloc.Producer(nil), r.producers...)
}

func (r *Registry) Consumers() []minealloc.Consumer {
	return append([]minealloc.Consumer(nil), r.consumers...)
}

func (r *Registry) Producer(id string) (minealloc.Producer, bool) {
	for _, p := range r.producers {
		if p.ID == id {
			return p, true
		}
	}
	return minealloc.Producer{}, false
}

func (r *Registry) Consumer(id string) (minealloc.Consumer, bool) {
	for _, c := range r.consumers {
		if c.ID == id {
			return c, true
		}
	}
	return minealloc.Consumer{}, false
}

// Calculate runs m on a snapshot of the registry and replaces the stored
// result. On error the previous result is kept.
func (r *Registry) Calculate(m minealloc.Matcher) (*minealloc.Result, error) {
	result, err := m.Match(r.Producers(), r.Consumers())
	if err != nil {
		return nil, fmt.Errorf("calculate allocation: %w", err)
	}
	r.result = result
	return result, nil
}

// Result returns the last computed allocation, nil before any calculation.
func (r *Registry) Result() *minealloc.Result {
	return r.result
}

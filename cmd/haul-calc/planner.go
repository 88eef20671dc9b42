// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/someonegg/minealloc"
	"github.com/someonegg/minealloc/haulage"
	"github.com/urfave/cli/v2"
)

var plannerFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "strategy",
		Usage: "specify the allocation strategy (greedy, proportional)",
	},
	&cli.Float64Flag{
		Name:  "sens",
		Usage: "specify the grade band width of the greedy strategy (0.0-100.0)",
	},
	&cli.Float64Flag{
		Name:  "tol",
		Usage: "specify the grade tolerance of the greedy strategy (0.0-100.0)",
	},
}

// newPlanner builds a planner from the config, overridden by any flag the
// user set.
func newPlanner(ctx *cli.Context) (*haulage.Planner, error) {
	var (
		strategy = cfg.Allocation.Strategy
		sens     = cfg.Allocation.Sensitivity
		tol      = cfg.Allocation.Tolerance
	)
	if ctx.IsSet("strategy") {
		strategy = ctx.String("strategy")
	}
	if ctx.IsSet("sens") {
		sens = ctx.Float64("sens")
	}
	if ctx.IsSet("tol") {
		tol = ctx.Float64("tol")
	}

	s, err := minealloc.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	if !(sens >= 0.0 && sens <= 100.0) {
		return nil, errInvalid("sens")
	}
	if !(tol >= 0.0 && tol <= 100.0) {
		return nil, errInvalid("tol")
	}

	return &haulage.Planner{
		Strategy:    s,
		Sensitivity: &sens,
		Tolerance:   &tol,
		Logger:      logger,
	}, nil
}

type errInvalid string

func (e errInvalid) Error() string {
	return "invalid " + string(e)
}

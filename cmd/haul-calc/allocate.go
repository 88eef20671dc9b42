// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/someonegg/minealloc/haulage"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var allocateCmd = &cli.Command{
	Name:    "allocate",
	Usage:   "Allocate excavator trucks to plants",
	Aliases: []string{"a"},
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input scenario (json or yaml)",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "specify the output plan.json",
		},
	}, plannerFlags...),
	Action: func(ctx *cli.Context) error {
		planner, err := newPlanner(ctx)
		if err != nil {
			return err
		}
		return doAllocate(ctx.App.Writer, planner, ctx.String("input"), ctx.String("output"))
	},
}

func doAllocate(w io.Writer, planner *haulage.Planner, inputFile, outputFile string) error {
	scenario, err := haulage.LoadScenario(inputFile)
	if err != nil {
		return fmt.Errorf("load scenario file failed: %w", err)
	}

	plan, err := planner.Plan(scenario)
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}
	logger.Info("allocation planned",
		zap.String("strategy", string(plan.Strategy)),
		zap.Int("rows", len(plan.Rows)),
		zap.Int64("short", plan.Summary.TrucksShort))

	printRows(w, plan.Rows)
	fmt.Fprintln(w)
	printSummary(w, plan.Summary)

	if outputFile == "" {
		return nil
	}
	if err := writePlan(outputFile, plan); err != nil {
		return fmt.Errorf("write plan file failed: %w", err)
	}
	return nil
}

func writePlan(file string, plan *haulage.Plan) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(plan); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}

// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/someonegg/minealloc/blend"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var blendCmd = &cli.Command{
	Name:    "blend",
	Usage:   "Solve the mass of material B for a target blended grade",
	Aliases: []string{"b"},
	Flags: []cli.Flag{
		&cli.Float64Flag{
			Name:     "mass-a",
			Required: true,
			Usage:    "specify the known mass of material A",
		},
		&cli.Float64Flag{
			Name:     "grade-a",
			Required: true,
			Usage:    "specify the grade of material A (0.0-100.0)",
		},
		&cli.Float64Flag{
			Name:     "grade-b",
			Required: true,
			Usage:    "specify the grade of material B (0.0-100.0)",
		},
		&cli.Float64Flag{
			Name:     "target",
			Required: true,
			Usage:    "specify the desired blended grade (0.0-100.0)",
		},
	},
	Action: func(ctx *cli.Context) error {
		in := blend.Input{
			MassA:       ctx.Float64("mass-a"),
			GradeA:      ctx.Float64("grade-a"),
			GradeB:      ctx.Float64("grade-b"),
			TargetGrade: ctx.Float64("target"),
		}
		return doBlend(ctx.App.Writer, in)
	},
}

func doBlend(w io.Writer, in blend.Input) error {
	r, err := blend.Solve(in)
	if err != nil {
		logger.Debug("blend rejected", zap.Error(err))
		return fmt.Errorf("blend: %w", err)
	}

	fmt.Fprintf(w, "material B mass: %.2f\n", r.MassB)
	fmt.Fprintf(w, "total mass:      %.2f\n", r.TotalMass)
	fmt.Fprintf(w, "material A:      %.1f%%\n", r.ShareA)
	fmt.Fprintf(w, "material B:      %.1f%%\n", r.ShareB)
	fmt.Fprintf(w, "verified grade:  %.3f%% (target %g%%)\n", r.VerifiedGrade, r.TargetGrade)
	fmt.Fprintln(w)
	for _, line := range r.Breakdown() {
		fmt.Fprintln(w, line)
	}
	return nil
}

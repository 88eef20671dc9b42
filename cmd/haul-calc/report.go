// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/someonegg/minealloc/haulage"
)

func printRows(w io.Writer, rows []haulage.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no trucks allocated")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EXCAVATOR\tGRADE\tPLANT\tREQUIRED\tTRUCKS\t")
	for _, row := range rows {
		mark := ""
		if !row.GradeMet {
			mark = " (below grade)"
		}
		fmt.Fprintf(tw, "%s\t%g%%\t%s\t%g%%\t%d%s\t\n",
			row.Excavator, row.ExcavatorGrade, row.Plant, row.RequiredGrade, row.Trucks, mark)
	}
	tw.Flush()
}

func printSummary(w io.Writer, summ haulage.Summary) {
	for _, p := range summ.Plants {
		line := fmt.Sprintf("%s: %d/%d trucks allocated", p.Name, p.Allocated, p.Capacity)
		if p.Unsatisfied {
			line += " (cannot be satisfied)"
		} else if p.UnderCapacity {
			line += " (under capacity)"
		}
		if p.BelowGrade > 0 {
			line += fmt.Sprintf(" (%d below grade requirement)", p.BelowGrade)
		}
		fmt.Fprintln(w, line)
	}
	for _, e := range summ.Excavators {
		if e.Unused > 0 {
			fmt.Fprintf(w, "%s: %d trucks unused\n", e.Name, e.Unused)
		}
	}
	fmt.Fprintf(w, "total: %d/%d trucks assigned, %d short, %d unused\n",
		summ.TrucksAssigned, summ.TrucksNeeded, summ.TrucksShort, summ.TrucksUnused)
}

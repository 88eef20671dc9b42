// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/someonegg/minealloc"
	"github.com/someonegg/minealloc/haulage"
	"github.com/someonegg/minealloc/registry"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var sessionCmd = &cli.Command{
	Name:    "session",
	Usage:   "Edit excavators and plants interactively and calculate allocations",
	Aliases: []string{"s"},
	Flags:   plannerFlags,
	Action: func(ctx *cli.Context) error {
		planner, err := newPlanner(ctx)
		if err != nil {
			return err
		}
		return runSession(ctx.App.Reader, ctx.App.Writer, planner)
	},
}

const sessionHelp = `commands:
  add-excavator NAME GRADE TRUCKS
  add-plant NAME GRADE CAPACITY
  rm ID
  list [ID]
  strategy greedy|proportional
  calc
  help
  quit`

var errQuit = errors.New("quit")

type session struct {
	out     io.Writer
	planner *haulage.Planner
	reg     *registry.Registry
}

// runSession reads one command per line until quit or end of input. A
// failing command reports its error and leaves the registry untouched.
func runSession(in io.Reader, out io.Writer, planner *haulage.Planner) error {
	s := &session{
		out:     out,
		planner: planner,
		reg:     registry.New(registry.WithIDGenerator(registry.SequentialIDs())),
	}

	fmt.Fprintln(out, "haul-calc session, type help for commands")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		err := s.exec(fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
	return scanner.Err()
}

func (s *session) exec(cmd string, args []string) error {
	switch cmd {
	case "add-excavator", "ae":
		name, grade, n, err := parseEntity(args)
		if err != nil {
			return err
		}
		grade, n = s.planner.ClampExcavator(name, grade, n)
		fmt.Fprintln(s.out, "added excavator", s.reg.AddProducer(name, grade, n))

	case "add-plant", "ap":
		name, grade, n, err := parseEntity(args)
		if err != nil {
			return err
		}
		grade, n = s.planner.ClampPlant(name, grade, n)
		fmt.Fprintln(s.out, "added plant", s.reg.AddConsumer(name, grade, n))

	case "rm":
		if len(args) != 1 {
			return errors.New("usage: rm ID")
		}
		if err := s.reg.Remove(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "removed", args[0])

	case "list", "ls":
		switch len(args) {
		case 0:
			s.list()
		case 1:
			return s.show(args[0])
		default:
			return errors.New("usage: list [ID]")
		}

	case "strategy":
		if len(args) != 1 {
			return errors.New("usage: strategy greedy|proportional")
		}
		strategy, err := minealloc.ParseStrategy(args[0])
		if err != nil {
			return err
		}
		s.planner.Strategy = strategy
		fmt.Fprintln(s.out, "strategy", strategy)

	case "calc":
		return s.calc()

	case "help":
		fmt.Fprintln(s.out, sessionHelp)

	case "quit", "exit":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func parseEntity(args []string) (name string, grade float64, n int64, err error) {
	if len(args) != 3 {
		return "", 0, 0, errors.New("expected NAME GRADE COUNT")
	}
	grade, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid grade %q", args[1])
	}
	n, err = strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid count %q", args[2])
	}
	return args[0], grade, n, nil
}

func (s *session) list() {
	producers, consumers := s.reg.Producers(), s.reg.Consumers()
	if len(producers) == 0 && len(consumers) == 0 {
		fmt.Fprintln(s.out, "nothing added yet")
		return
	}
	for _, p := range producers {
		fmt.Fprintf(s.out, "%s excavator %s grade %g%% trucks %d\n", p.ID, p.Name, p.Grade, p.Trucks)
	}
	for _, c := range consumers {
		fmt.Fprintf(s.out, "%s plant %s required %g%% capacity %d\n", c.ID, c.Name, c.RequiredGrade, c.Capacity)
	}
}

func (s *session) show(id string) error {
	if p, ok := s.reg.Producer(id); ok {
		fmt.Fprintf(s.out, "%s excavator %s grade %g%% trucks %d\n", p.ID, p.Name, p.Grade, p.Trucks)
		return nil
	}
	if c, ok := s.reg.Consumer(id); ok {
		fmt.Fprintf(s.out, "%s plant %s required %g%% capacity %d\n", c.ID, c.Name, c.RequiredGrade, c.Capacity)
		return nil
	}
	return fmt.Errorf("%s: %w", id, registry.ErrNotFound)
}

func (s *session) calc() error {
	producers, consumers := s.reg.Producers(), s.reg.Consumers()
	if len(producers) == 0 || len(consumers) == 0 {
		return errors.New("add at least one excavator and one plant first")
	}

	matcher, err := s.planner.Matcher()
	if err != nil {
		return err
	}
	result, err := s.reg.Calculate(matcher)
	if err != nil {
		return err
	}
	logger.Debug("session calculated",
		zap.String("strategy", string(result.Strategy)),
		zap.Int("allocations", len(result.Allocations)))

	printRows(s.out, haulage.Rows(producers, consumers, result))
	fmt.Fprintln(s.out)
	printSummary(s.out, haulage.Summarize(producers, consumers, result))
	return nil
}

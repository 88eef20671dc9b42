// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/someonegg/minealloc/config"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "haul-calc",
		Usage: "Truck allocation and material blending for mine haulage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "minealloc.yaml",
				Usage: "specify the config file (yaml)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(ctx *cli.Context) error {
			var err error
			cfg, err = config.Load(ctx.String("config"))
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			logger, err = newLogger(cfg.Logging, ctx.Bool("verbose"))
			return err
		},
		After: func(ctx *cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			allocateCmd,
			blendCmd,
			configCmd,
			sessionCmd,
		},
	}
}

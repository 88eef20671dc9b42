// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "Manage the config file",
	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "Write the effective configuration to the config file",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "force",
					Usage: "overwrite an existing config file",
				},
			},
			Action: func(ctx *cli.Context) error {
				path := ctx.String("config")
				if err := initConfig(path, ctx.Bool("force")); err != nil {
					return err
				}
				fmt.Fprintln(ctx.App.Writer, "wrote", path)
				return nil
			},
		},
	},
}

func initConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	logger.Debug("config written", zap.String("path", path))
	return nil
}

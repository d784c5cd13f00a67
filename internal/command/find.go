// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/eligum/primes/internal/meta"
)

type findRow struct {
	Number uint64 `json:"number"`
	Index  int    `json:"index"`
	Prime  uint64 `json:"prime"`
}

// FindCommandAction is the action handler for the "find" subcommand.
// For each positional argument it reports the smallest prime greater
// than or equal to it, together with that prime's sequence index. With
// --cached the answer must come from the snapshot alone.
func FindCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[findRow]{
		CommandName:  "find",
		DefaultAttrs: []string{"number", "index", "prime"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]findRow, error) {
			numbers, err := parseUints(cmd)
			if err != nil {
				return nil, err
			}

			set := LoadSet()
			cachedOnly := cmd.Bool("cached")

			rows := make([]findRow, 0, len(numbers))
			for _, n := range numbers {
				var (
					idx int
					p   uint64
				)
				if cachedOnly {
					var ok bool
					idx, p, ok = set.FindCached(n)
					if !ok {
						return nil, fmt.Errorf(
							"%d is beyond the snapshot maximum %d", n, set.Max())
					}
				} else {
					idx, p, err = set.Find(n)
					if err != nil {
						return nil, err
					}
				}
				rows = append(rows, findRow{Number: n, Index: idx, Prime: p})
			}

			if !cachedOnly {
				SaveSet(set)
			}
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// FindCommandBuilder constructs the cli.Command for "find".
func FindCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "find",
		Usage:     "find the smallest prime >= each number",
		UsageText: `primes find NUMBER [NUMBER...] [options]`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "cached",
				Usage:       "answer from the snapshot only, never extend it",
				HideDefault: true,
			},
		},
		Action: FindCommandAction,
		Meta:   meta,
	}).Build()
}

// FindCommandValidator performs validation for "find" and delegates
// shared checks to GlobalFlagsValidator.
func FindCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}

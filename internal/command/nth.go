// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/eligum/primes/internal/meta"
)

type nthRow struct {
	Index int    `json:"index"`
	Prime uint64 `json:"prime"`
}

// NthCommandAction is the action handler for the "nth" subcommand. Each
// positional argument is a 0-based index into the prime sequence.
func NthCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[nthRow]{
		CommandName:  "nth",
		DefaultAttrs: []string{"index", "prime"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]nthRow, error) {
			indexes, err := parseIndexes(cmd)
			if err != nil {
				return nil, err
			}

			set := LoadSet()
			rows := make([]nthRow, 0, len(indexes))
			for _, k := range indexes {
				p, err := set.Nth(k)
				if err != nil {
					return nil, err
				}
				rows = append(rows, nthRow{Index: k, Prime: p})
			}

			SaveSet(set)
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// NthCommandBuilder constructs the cli.Command for "nth".
func NthCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "nth",
		Usage:     "look up primes by sequence index",
		UsageText: `primes nth INDEX [INDEX...] [options]`,
		Action:    NthCommandAction,
		Meta:      meta,
	}).Build()
}

// NthCommandValidator performs validation for "nth" and delegates shared
// checks to GlobalFlagsValidator.
func NthCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}

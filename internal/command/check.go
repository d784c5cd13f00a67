// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/eligum/primes/internal/meta"
)

type checkRow struct {
	Number uint64 `json:"number"`
	Prime  bool   `json:"prime"`
}

// CheckCommandAction is the action handler for the "check" subcommand.
// It reports primality for each positional argument.
func CheckCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[checkRow]{
		CommandName:  "check",
		DefaultAttrs: []string{"number", "prime"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]checkRow, error) {
			numbers, err := parseUints(cmd)
			if err != nil {
				return nil, err
			}

			set := LoadSet()
			rows := make([]checkRow, 0, len(numbers))
			for _, n := range numbers {
				rows = append(rows, checkRow{Number: n, Prime: set.IsPrime(n)})
			}

			SaveSet(set)
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// CheckCommandBuilder constructs the cli.Command for "check".
func CheckCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "check",
		Usage:     "test numbers for primality",
		UsageText: `primes check NUMBER [NUMBER...] [options]`,
		Action:    CheckCommandAction,
		Meta:      meta,
	}).Build()
}

// CheckCommandValidator performs validation for "check" and delegates
// shared checks to GlobalFlagsValidator.
func CheckCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}

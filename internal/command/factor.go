// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/eligum/primes/internal/meta"
)

type factorRow struct {
	Number   uint64 `json:"number"`
	Prime    uint64 `json:"prime"`
	Exponent int    `json:"exponent"`
}

// FactorCommandAction is the action handler for the "factor" subcommand.
// It emits one row per (prime, exponent) term of each argument's
// factorization. With --distinct, multiplicities are dropped and every
// exponent reads 1.
func FactorCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[factorRow]{
		CommandName:  "factor",
		DefaultAttrs: []string{"number", "prime", "exponent"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]factorRow, error) {
			numbers, err := parseUints(cmd)
			if err != nil {
				return nil, err
			}

			set := LoadSet()
			distinct := cmd.Bool("distinct")

			var rows []factorRow
			for _, n := range numbers {
				if distinct {
					primes, err := set.DistinctFactors(n)
					if err != nil {
						return nil, err
					}
					for _, p := range primes {
						rows = append(rows, factorRow{Number: n, Prime: p, Exponent: 1})
					}
					continue
				}

				factors, err := set.Factorize(n)
				if err != nil {
					return nil, err
				}
				for _, f := range factors {
					rows = append(rows, factorRow{
						Number:   n,
						Prime:    f.Prime,
						Exponent: f.Exponent,
					})
				}
			}

			SaveSet(set)
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// FactorCommandBuilder constructs the cli.Command for "factor".
func FactorCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "factor",
		Usage:     "prime factorization",
		UsageText: `primes factor NUMBER [NUMBER...] [options]`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "distinct",
				Aliases:     []string{"d"},
				Usage:       "distinct prime factors only, without multiplicities",
				HideDefault: true,
			},
		},
		Action: FactorCommandAction,
		Meta:   meta,
	}).Build()
}

// FactorCommandValidator performs validation for "factor" and delegates
// shared checks to GlobalFlagsValidator.
func FactorCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}

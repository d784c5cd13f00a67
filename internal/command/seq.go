// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/eligum/primes/internal/meta"
)

type seqRow struct {
	Index int    `json:"index"`
	Prime uint64 `json:"prime"`
}

// SeqCommandAction is the action handler for the "seq" subcommand. It
// emits consecutive primes starting at --skip (or at the first prime
// >= --from), reusing the snapshot from earlier runs.
func SeqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[seqRow]{
		CommandName:  "seq",
		DefaultAttrs: []string{"index", "prime"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]seqRow, error) {
			set := LoadSet()

			start := cmd.Int("skip")
			if from := cmd.Uint("from"); from > 0 {
				idx, _, err := set.Find(uint64(from))
				if err != nil {
					return nil, err
				}
				start = idx
			}

			count := cmd.Int("count")
			rows := make([]seqRow, 0, count)
			cur := set.IterAt(start)
			for i := 0; i < count; i++ {
				p, err := cur.Next()
				if err != nil {
					return nil, err
				}
				rows = append(rows, seqRow{Index: start + i, Prime: p})
			}

			SaveSet(set)
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// SeqCommandBuilder constructs the cli.Command for "seq", configuring
// metadata, flags, and the associated action/validator.
func SeqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "seq",
		Usage:     "emit consecutive primes",
		UsageText: `primes seq [options]`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of primes to emit",
				Value:   10,
				Sources: cli.NewValueSourceChain(
					yaml.YAML("seq.count", altsrc.StringSourcer(meta.Config.Source)),
					yaml.YAML("count", altsrc.StringSourcer(meta.Config.Source)),
				),
				Validator: func(value int) error {
					return FlagValidators(value, PositiveIntValidator)
				},
			},
			&cli.IntFlag{
				Name:  "skip",
				Usage: "number of leading primes to skip",
				Value: 0,
				Validator: func(value int) error {
					return FlagValidators(value, NonNegativeIntValidator)
				},
			},
			&cli.UintFlag{
				Name:  "from",
				Usage: "start at the smallest prime >= this value. Overrides --skip",
			},
		},
		Action: SeqCommandAction,
		Meta:   meta,
	}).Build()
}

// SeqCommandValidator performs validation for "seq" and delegates shared
// checks to GlobalFlagsValidator.
func SeqCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}

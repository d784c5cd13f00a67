// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/eligum/primes/internal/attrs"
	"github.com/eligum/primes/internal/cacheutil"
	"github.com/eligum/primes/internal/meta"
	"github.com/eligum/primes/internal/output"
	"github.com/eligum/primes/primeset"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr primes <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "primes", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras
// from --attrs.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	for _, d := range defaults {
		al.Set(d)
	}
	if extras := cmd.String("attrs"); extras != "" {
		al.Set(extras)
	}
	return
}

// EmitRows marshals a row slice as JSON and passes it to the common
// output routine.
func EmitRows(rows any, al attrs.AttrList, cmd *cli.Command) error {
	var raw bytes.Buffer
	if err := json.NewEncoder(&raw).Encode(rows); err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	output.SliceDiceSpit(raw, al, cmd, "", os.Stdout)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// Snapshot location beneath the cache base directory. The key is
// versioned so a change to the snapshot format never has to parse an
// older layout, it just starts fresh.
var snapshotSubdirs = []string{"snapshot"}

const snapshotKey = "primes-v1"

// LoadSet warm-starts a prime set from the snapshot written by an
// earlier run. Any unreadable or structurally invalid snapshot is
// discarded and a freshly seeded set returned, so the snapshot is never
// load-bearing for correctness.
func LoadSet() *primeset.Set {
	entry, ok := cacheutil.Read(snapshotSubdirs, snapshotKey)
	if !ok {
		return primeset.New()
	}

	var list []uint64
	if err := json.Unmarshal(entry.Data, &list); err != nil {
		log.WithError(err).Warn("discarding unreadable prime snapshot")
		return primeset.New()
	}

	s, ok := primeset.Restore(list)
	if !ok {
		log.Warn("discarding malformed prime snapshot")
		return primeset.New()
	}

	log.Debugf("restored %d primes from snapshot", s.Len())
	return s
}

// SaveSet persists the set for future warm starts. Best-effort; a
// failed write costs the next run some recomputation, nothing more.
func SaveSet(s *primeset.Set) {
	data, err := json.Marshal(s.List())
	if err != nil {
		return
	}
	if err := cacheutil.Write(snapshotSubdirs, snapshotKey, data); err != nil {
		log.WithError(err).Warn("failed to write prime snapshot")
	}
}

// parseUints parses the command's positional arguments as base-10
// unsigned integers.
func parseUints(cmd *cli.Command) ([]uint64, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, errors.New("at least one number is required")
	}
	out := make([]uint64, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: must be a non-negative integer", a)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseIndexes parses the command's positional arguments as 0-based
// sequence indexes.
func parseIndexes(cmd *cli.Command) ([]int, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, errors.New("at least one index is required")
	}
	out := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil || k < 0 {
			return nil, fmt.Errorf("invalid index %q: must be a non-negative integer", a)
		}
		out = append(out, k)
	}
	return out, nil
}

// QueryCommandBuilder is a helper that constructs a cli.Command for query
// subcommands (seq, nth, find, check, factor) using a consistent pattern.
// It accepts the command name, usage text, optional UsageText, custom flags,
// the action handler, and meta. The builder automatically wires metadata,
// adds the tldr flag, applies global flags, and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags(qcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}

// QueryActionRunner[T] encapsulates the common query action pattern for
// all query subcommands: GetMeta, the --tldr short circuit, BuildAttrs,
// row production, and output emission. FetchFn produces the rows.
type QueryActionRunner[T any] struct {
	CommandName  string
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}

	al := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", al)

	rows, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	return EmitRows(rows, al, cmd)
}

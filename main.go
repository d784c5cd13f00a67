// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/eligum/primes/internal/cacheutil"
	"github.com/eligum/primes/internal/command"
	"github.com/eligum/primes/internal/config"
	mylog "github.com/eligum/primes/internal/log"
	"github.com/eligum/primes/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	// Best-effort: pre-create cache directory when caching is enabled,
	// then sweep out entries older than the cache.clean retention (hours)
	// from the config file.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		// Non-fatal: print to stderr and continue.
		fmt.Fprintln(os.Stderr, err)
	} else if ok {
		hours, _ := config.GetInt("cache.clean")
		if err := cacheutil.Purge(hours); err != nil {
			log.WithError(err).Warn("cache purge failed")
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments expands the @set shorthand: a @name arg is replaced
// in place with the <subcommand>.<name> list from the config file, and
// when no @set is given the <subcommand>.defaults list (if any) is
// inserted right after the subcommand.
func mangleArguments(args []string) []string {
	// We know the first two args are going to be the executable and command.
	preamble := make([]string, 2)
	copy(preamble, args[:2])

	// Short-circuit for --help/-h. If help is requested, just keep the preamble
	// and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
	}

	// Only query subcommands carry @sets.
	if strings.HasPrefix(args[1], "-") || args[1] == "completion" {
		return args
	}

	working := append([]string{}, args...)

	// See if there is a @set specified. If so, that becomes the insertion
	// point and the @set entry is removed from args. Otherwise the
	// defaults set is inserted right after the subcommand.
	idx := 2
	set := "defaults"
	for i, a := range working[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx += i
			working = append(working[:idx], working[idx+1:]...)
			break
		}
	}

	setArgs, _ := config.GetStringSlice(working[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		working = append(working[:idx], append(parts, working[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, working)
	return working
}

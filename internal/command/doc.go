// Copyright © 2025 eligum <eligum@users.noreply.github.com>
// SPDX-License-Identifier: Apache-2.0

// Package command defines the primes subcommands and the shared
// plumbing (flags, validators, snapshot handling, output emission)
// they are built from.
package command

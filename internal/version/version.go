// Copyright © 2025 eligum <eligum@users.noreply.github.com>
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, overridden at link time via
// -ldflags "-X github.com/eligum/primes/internal/version.Version=...".
package version

var Version = "dev"

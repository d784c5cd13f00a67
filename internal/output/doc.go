// Copyright © 2025 eligum <eligum@users.noreply.github.com>
// SPDX-License-Identifier: Apache-2.0

// Package output provides sorting, filtering, and emission utilities used by
// commands to present results in various formats.
package output

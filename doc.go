// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

// primes is a command line toolkit over a lazily grown set of prime
// numbers. Every query extends the set only as far as the answer
// requires, and the set is snapshotted between runs so earlier work is
// never repeated.
package main

// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

// Package primeset implements a lazy, incrementally caching prime-number
// generator. A Set remembers every prime discovered so far and extends
// itself on demand by trial division against its own contents, so
// primality tests, factorization, and enumeration never redo earlier
// work. Cursors provide restartable iteration over the (unbounded)
// prime sequence; many cursors may share one Set.
package primeset

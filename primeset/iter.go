// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package primeset

// Cursor is a lightweight position over the increasing prime sequence.
// Advancing a cursor past the end of the underlying set extends the
// set, and that growth is visible to every other cursor sharing it;
// nothing is ever re-derived. A fresh cursor over the same set replays
// the identical sequence from the start.
type Cursor struct {
	set *Set
	pos int
}

// Iter returns a cursor positioned at the start of the sequence.
func (s *Set) Iter() *Cursor {
	return &Cursor{set: s}
}

// IterAt returns a cursor that skips the first k primes. Negative k is
// treated as 0.
func (s *Set) IterAt(k int) *Cursor {
	if k < 0 {
		k = 0
	}
	return &Cursor{set: s, pos: k}
}

// Generator returns a cursor positioned past every prime found so far,
// yielding only primes not yet discovered.
func (s *Set) Generator() *Cursor {
	return &Cursor{set: s, pos: s.Len()}
}

// Next returns the next prime in increasing order, extending the shared
// set when the cursor has moved beyond it. The sequence is unbounded;
// the only possible error is ErrOverflow at the edge of the uint64
// range.
func (c *Cursor) Next() (uint64, error) {
	p, err := c.set.Nth(c.pos)
	if err != nil {
		return 0, err
	}
	c.pos++
	return p, nil
}

// Pos reports how many primes the cursor has yielded so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Copyright © 2025 eligum <eligum@users.noreply.github.com>
// SPDX-License-Identifier: Apache-2.0

// Package attrs models the list of row attributes a command emits and
// the --attrs additions requested by the user.
package attrs

import (
	"strings"

	"github.com/apex/log"
)

// Attr represents each of the keys to be included in the output.
type Attr struct {
	// The JSON key to extract from the result row.
	Key string
	// Should this Attr be included in output or is it just
	// intended for filtering and sorting?
	Include bool
	// The key to use in the output. This is also the column title
	// when output=text.
	OutputKey string
}

// AttrList is an ordered collection of Attrs. Order determines column
// order in text output.
type AttrList []Attr

// Set parses a comma-separated attr spec and appends to the list.
// Each entry is "key", "key:output" to rename, or "-key" to make the
// attribute available for filtering and sorting without emitting it.
// Re-specifying a known key updates it in place rather than duplicating
// the column.
func (al *AttrList) Set(spec string) {
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		include := true
		if strings.HasPrefix(entry, "-") {
			include = false
			entry = strings.TrimPrefix(entry, "-")
		}

		attr := Attr{Key: entry, OutputKey: entry, Include: include}
		if key, output, found := strings.Cut(entry, ":"); found {
			attr.Key = key
			attr.OutputKey = output
		}

		if attr.Key == "" {
			log.Error("invalid attr: " + entry)
			continue
		}

		replaced := false
		for i := range *al {
			if (*al)[i].Key == attr.Key {
				(*al)[i] = attr
				replaced = true
				break
			}
		}
		if !replaced {
			*al = append(*al, attr)
		}
	}
}

// Keys returns the underlying row keys, in order.
func (al AttrList) Keys() []string {
	out := make([]string, len(al))
	for i, a := range al {
		out[i] = a.Key
	}
	return out
}

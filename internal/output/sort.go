// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// SortDataset sorts the result set in place per the --sort spec: a
// comma-separated list of output keys, each optionally prefixed with
// '-' for descending order or '!' for case-sensitive string compare.
// Later keys break ties left by earlier ones. An empty spec leaves the
// dataset untouched.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	type sortKey struct {
		key           string
		descending    bool
		caseSensitive bool
	}

	//nolint:prealloc
	var keys []sortKey
	for _, k := range strings.Split(spec, ",") {
		k = strings.TrimSpace(k)
		sk := sortKey{}
		if strings.HasPrefix(k, "-") {
			sk.descending = true
			k = strings.TrimPrefix(k, "-")
		}
		if strings.HasPrefix(k, "!") {
			sk.caseSensitive = true
			k = strings.TrimPrefix(k, "!")
		}
		if k == "" {
			continue
		}
		sk.key = k
		keys = append(keys, sk)
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, sk := range keys {
			cmp := compareValues(dataset[i][sk.key], dataset[j][sk.key], sk.caseSensitive)
			if cmp == 0 {
				continue
			}
			if sk.descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareValues orders two row values: numerically when both are
// numbers, otherwise by their string form.
func compareValues(a, b interface{}, caseSensitive bool) int {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}

	sa := InterfaceToString(a)
	sb := InterfaceToString(b)
	if !caseSensitive {
		sa = strings.ToLower(sa)
		sb = strings.ToLower(sb)
	}
	return strings.Compare(sa, sb)
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case uint64:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

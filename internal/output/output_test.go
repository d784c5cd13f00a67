// Copyright (c) 2025 eligum <eligum@users.noreply.github.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/eligum/primes/internal/attrs"
)

func primeAttrs() attrs.AttrList {
	var al attrs.AttrList
	al.Set("index,prime")
	return al
}

func primeRows() string {
	return `[
		{"index": 0, "prime": 2},
		{"index": 1, "prime": 3},
		{"index": 2, "prime": 5},
		{"index": 3, "prime": 7},
		{"index": 4, "prime": 11}
	]`
}

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"name": "zebra", "prime": uint64(3)},
		{"name": "alpha", "prime": uint64(11)},
		{"name": "beta", "prime": uint64(2)},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by name",
			spec:      "name",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by name",
			spec:      "-name",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "ascending numeric",
			spec:      "prime",
			wantOrder: []string{"beta", "zebra", "alpha"},
		},
		{
			name:      "descending numeric",
			spec:      "-prime",
			wantOrder: []string{"alpha", "zebra", "beta"},
		},
		{
			name:      "case sensitive",
			spec:      "!name",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "multiple fields",
			spec:      "prime,name",
			wantOrder: []string{"beta", "zebra", "alpha"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"zebra", "alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, data[i]["name"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		nilVal string
		want   string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "uint64",
			value: uint64(18446744073709551557),
			want:  "18446744073709551557",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "zero int is meaningful",
			value: 0,
			want:  "0",
		},
		{
			name:  "bool false",
			value: false,
			want:  "false",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:   "nil custom",
			value:  nil,
			nilVal: "-",
			want:   "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.nilVal != "" {
				got = InterfaceToString(tt.value, tt.nilVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellHuman(t *testing.T) {
	assert.Equal(t, "1,009", cell(uint64(1009), true))
	assert.Equal(t, "18,446,744,073,709,551,557", cell(uint64(18446744073709551557), true))
	assert.Equal(t, "1009", cell(uint64(1009), false))
	assert.Equal(t, "-", cell(nil, true))
}

func TestRowValueKeepsIntegerPrecision(t *testing.T) {
	// 2^63 + 1 is not representable in a float64.
	r := gjson.Parse(`{"prime": 9223372036854775809}`).Get("prime")
	v := rowValue(r)
	assert.Equal(t, uint64(9223372036854775809), v)

	r = gjson.Parse(`{"avg": 2.5}`).Get("avg")
	assert.Equal(t, 2.5, rowValue(r))
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{
			name: "empty",
			spec: "",
			want: nil,
		},
		{
			name: "equals",
			spec: "prime=7",
			want: []Filter{{Key: "prime", Operand: "=", Target: "7"}},
		},
		{
			name: "negated",
			spec: "prime!=7",
			want: []Filter{{Key: "prime", Negate: true, Operand: "=", Target: "7"}},
		},
		{
			name: "greater than",
			spec: "prime>100",
			want: []Filter{{Key: "prime", Operand: ">", Target: "100"}},
		},
		{
			name: "multiple",
			spec: "prime>10,index<4",
			want: []Filter{
				{Key: "prime", Operand: ">", Target: "10"},
				{Key: "index", Operand: "<", Target: "4"},
			},
		},
		{
			name: "invalid skipped",
			spec: "bogus",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestFilterDataset(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		wantPrimes []uint64
	}{
		{
			name:       "no filter keeps all",
			spec:       "",
			wantPrimes: []uint64{2, 3, 5, 7, 11},
		},
		{
			name:       "numeric greater than",
			spec:       "prime>5",
			wantPrimes: []uint64{7, 11},
		},
		{
			name:       "numeric compare is not lexicographic",
			spec:       "prime>3",
			wantPrimes: []uint64{5, 7, 11},
		},
		{
			name:       "equals",
			spec:       "prime=7",
			wantPrimes: []uint64{7},
		},
		{
			name:       "negated equals",
			spec:       "prime!=7",
			wantPrimes: []uint64{2, 3, 5, 11},
		},
		{
			name:       "combined",
			spec:       "prime>2,index<3",
			wantPrimes: []uint64{3, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDataset(gjson.Parse(primeRows()), primeAttrs(), tt.spec)
			var primes []uint64
			for _, row := range got {
				primes = append(primes, row["prime"].(uint64))
			}
			assert.Equal(t, tt.wantPrimes, primes)
		})
	}
}

// runSpit drives SliceDiceSpit through a real cli.Command so flag
// parsing behaves as in production.
func runSpit(t *testing.T, args []string, raw string, al attrs.AttrList) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cli.Command{
		Name: "spit",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
			&cli.BoolFlag{Name: "titles"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "human"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			SliceDiceSpit(*bytes.NewBufferString(raw), al, cmd, "", &buf)
			return nil
		},
	}
	err := cmd.Run(context.Background(), append([]string{"spit"}, args...))
	assert.NoError(t, err)
	return buf.String()
}

func TestSliceDiceSpitJSON(t *testing.T) {
	out := runSpit(t, []string{"--output=json", "--filter=prime>5"}, primeRows(), primeAttrs())

	var rows []map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, float64(7), rows[0]["prime"])
	assert.Equal(t, float64(11), rows[1]["prime"])
}

func TestSliceDiceSpitRaw(t *testing.T) {
	out := runSpit(t, []string{"--output=raw"}, primeRows(), primeAttrs())
	assert.Equal(t, primeRows(), out)
}

func TestSliceDiceSpitYAML(t *testing.T) {
	out := runSpit(t, []string{"--output=yaml", "--filter=prime=2"}, primeRows(), primeAttrs())
	assert.Contains(t, out, "prime: 2")
	assert.Contains(t, out, "index: 0")
}

func TestSliceDiceSpitTable(t *testing.T) {
	out := runSpit(t, []string{"--titles", "--sort=-prime"}, primeRows(), primeAttrs())
	assert.Contains(t, out, "index")
	assert.Contains(t, out, "prime")
	assert.Contains(t, out, "11")
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"name": "zebra", "prime": uint64(3)},
		{"name": "alpha", "prime": uint64(11)},
		{"name": "beta", "prime": uint64(2)},
	}

	spec := "name"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, spec)
	}
}

func BenchmarkInterfaceToString(b *testing.B) {
	values := []interface{}{
		"string",
		uint64(1009),
		42,
		true,
		nil,
		[]string{"a", "b"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			InterfaceToString(v)
		}
	}
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iris = `5.1,3.5,1.4,0.2,Iris-setosa
4.9,3.0,1.4,0.2,Iris-setosa
4.7,3.2,1.3,0.2,Iris-setosa
4.6,3.1,1.5,0.2,Iris-setosa
5.0,3.6,1.4,0.2,Iris-setosa
5.4,3.9,1.7,0.4,Iris-setosa
4.6,3.4,1.4,0.3,Iris-setosa


`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(iris))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, f.Columns)
	assert.Equal(t, 7, f.Len(), "trailing blank lines are skipped")
	assert.Equal(t, []string{"5.1", "3.5", "1.4", "0.2", "Iris-setosa"}, f.Rows[0])
}

func TestParse_Ragged(t *testing.T) {
	f, err := Parse(strings.NewReader("a,b\nc,d,e\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, f.Columns)

	recs := f.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, map[string]string{"0": "a", "1": "b", "2": ""}, recs[0])
	assert.Equal(t, "e", recs[1]["2"])
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("a,\"unterminated\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Columns)
}

func TestHead(t *testing.T) {
	f, err := Parse(strings.NewReader(iris))
	require.NoError(t, err)

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "default", n: DefaultHead, want: 5},
		{name: "fewer", n: 2, want: 2},
		{name: "more than available", n: 100, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := f.Head(tt.n)
			assert.Equal(t, tt.want, h.Len())
			assert.Equal(t, f.Columns, h.Columns)
			assert.Equal(t, f.Rows[0], h.Rows[0])
		})
	}
}

func TestHead_ZeroAndNegative(t *testing.T) {
	f, err := Parse(strings.NewReader(iris))
	require.NoError(t, err)

	assert.Equal(t, 0, f.Head(0).Len())
	assert.Equal(t, f.Columns, f.Head(0).Columns)

	h := f.Head(-3)
	assert.Equal(t, f.Len()-3, h.Len())
	assert.Equal(t, f.Rows[0], h.Rows[0])

	assert.Equal(t, 0, f.Head(-100).Len())
}

func TestReadCSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "iris.csv")
	require.NoError(t, os.WriteFile(p, []byte(iris), 0o600))

	f, err := ReadCSV(p)
	require.NoError(t, err)
	assert.Equal(t, 7, f.Len())

	_, err = ReadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

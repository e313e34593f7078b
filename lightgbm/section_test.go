package lightgbm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

func TestMapSection(t *testing.T) {
	s := MapSection{
		"n":      " 3 ",
		"ints":   "1 -2\t3",
		"floats": "0.5 inf -inf nan 1e-3",
		"bad":    "x",
		"badarr": "1 two 3",
	}

	t.Run("Int", func(t *testing.T) {
		n, err := s.Int("n")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("IntArray", func(t *testing.T) {
		v, err := s.IntArray("ints", 3)
		require.NoError(t, err)
		assert.Equal(t, []int{1, -2, 3}, v)
	})

	t.Run("DoubleArray accepts non-finite values", func(t *testing.T) {
		v, err := s.DoubleArray("floats", 5)
		require.NoError(t, err)
		assert.Equal(t, 0.5, v[0])
		assert.True(t, math.IsInf(v[1], 1))
		assert.True(t, math.IsInf(v[2], -1))
		assert.True(t, math.IsNaN(v[3]))
		assert.Equal(t, 0.001, v[4])
	})

	tests := []struct {
		name string
		call func() error
		key  string
	}{
		{"missing key", func() error { _, err := s.Int("missing"); return err }, "missing"},
		{"not an integer", func() error { _, err := s.Int("bad"); return err }, "bad"},
		{"bad array element", func() error { _, err := s.IntArray("badarr", 3); return err }, "badarr"},
		{"bad float element", func() error { _, err := s.DoubleArray("badarr", 3); return err }, "badarr"},
		{"length mismatch", func() error { _, err := s.IntArray("ints", 4); return err }, "ints"},
		{"double length mismatch", func() error { _, err := s.DoubleArray("floats", 2); return err }, "floats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrFormat))
			var fe *errors.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.key, fe.Key)
		})
	}
}

func TestNodeRef(t *testing.T) {
	tests := []struct {
		raw   int
		leaf  bool
		index int
		str   string
	}{
		{0, false, 0, "internal 0"},
		{7, false, 7, "internal 7"},
		{-1, true, 0, "leaf 0"},
		{-3, true, 2, "leaf 2"},
	}
	for _, tt := range tests {
		ref := RefOf(tt.raw)
		assert.Equal(t, tt.leaf, ref.IsLeaf(), "raw %d", tt.raw)
		assert.Equal(t, tt.index, ref.Index(), "raw %d", tt.raw)
		assert.Equal(t, tt.raw, ref.Raw(), "raw %d", tt.raw)
		assert.Equal(t, tt.str, ref.String())
	}
	assert.Equal(t, RefOf(-5), LeafRef(4))
	assert.Equal(t, RefOf(4), InternalRef(4))
}

package lightgbm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

// Tree holds the raw arrays of one serialized tree. Internal arrays have
// NumLeaves-1 elements and leaf arrays NumLeaves elements; Load guarantees
// this and Decode re-checks it for hand-built values.
type Tree struct {
	NumLeaves     int
	LeftChild     []int
	RightChild    []int
	SplitFeature  []int
	Threshold     []float64
	LeafValue     []float64
	LeafCount     []int
	InternalValue []float64
	InternalCount []int
}

// Load reads a tree from section. num_leaves is read first and every array
// is sized against it.
func Load(section Section) (*Tree, error) {
	numLeaves, err := section.Int(KeyNumLeaves)
	if err != nil {
		return nil, asFormatError(KeyNumLeaves, err)
	}
	if numLeaves < 1 {
		return nil, errors.NewFormatErrorf(KeyNumLeaves, "must be at least 1, got %d", numLeaves)
	}
	n := numLeaves - 1

	t := &Tree{NumLeaves: numLeaves}
	ints := []struct {
		key  string
		size int
		dst  *[]int
	}{
		{KeyLeftChild, n, &t.LeftChild},
		{KeyRightChild, n, &t.RightChild},
		{KeySplitFeature, n, &t.SplitFeature},
		{KeyLeafCount, numLeaves, &t.LeafCount},
		{KeyInternalCount, n, &t.InternalCount},
	}
	for _, a := range ints {
		if *a.dst, err = readInts(section, a.key, a.size); err != nil {
			return nil, err
		}
	}

	doubles := []struct {
		key  string
		size int
		dst  *[]float64
	}{
		{KeyThreshold, n, &t.Threshold},
		{KeyLeafValue, numLeaves, &t.LeafValue},
		{KeyInternalValue, n, &t.InternalValue},
	}
	for _, a := range doubles {
		if *a.dst, err = readDoubles(section, a.key, a.size); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func readInts(section Section, key string, n int) ([]int, error) {
	v, err := section.IntArray(key, n)
	if err != nil {
		return nil, asFormatError(key, err)
	}
	if len(v) != n {
		return nil, errors.LengthMismatchError(key, n, len(v))
	}
	return v, nil
}

func readDoubles(section Section, key string, n int) ([]float64, error) {
	v, err := section.DoubleArray(key, n)
	if err != nil {
		return nil, asFormatError(key, err)
	}
	if len(v) != n {
		return nil, errors.LengthMismatchError(key, n, len(v))
	}
	return v, nil
}

// asFormatError keeps format errors as they are and turns anything else a
// Section returns into one.
func asFormatError(key string, err error) error {
	if errors.Is(err, errors.ErrFormat) {
		return err
	}
	return errors.NewFormatError(key, err.Error())
}

// NumInternal returns the number of internal nodes, NumLeaves-1.
func (t *Tree) NumInternal() int {
	return t.NumLeaves - 1
}

// Root returns the reference decoding starts from: internal node 0, or
// leaf 0 for a single-leaf tree.
func (t *Tree) Root() NodeRef {
	if t.NumLeaves == 1 {
		return LeafRef(0)
	}
	return InternalRef(0)
}

// Validate checks the array length invariants.
func (t *Tree) Validate() error {
	if t.NumLeaves < 1 {
		return errors.NewFormatErrorf(KeyNumLeaves, "must be at least 1, got %d", t.NumLeaves)
	}
	n := t.NumInternal()
	checks := []struct {
		key       string
		want, got int
	}{
		{KeyLeftChild, n, len(t.LeftChild)},
		{KeyRightChild, n, len(t.RightChild)},
		{KeySplitFeature, n, len(t.SplitFeature)},
		{KeyThreshold, n, len(t.Threshold)},
		{KeyLeafValue, t.NumLeaves, len(t.LeafValue)},
		{KeyLeafCount, t.NumLeaves, len(t.LeafCount)},
		{KeyInternalValue, n, len(t.InternalValue)},
		{KeyInternalCount, n, len(t.InternalCount)},
	}
	for _, c := range checks {
		if c.want != c.got {
			return errors.LengthMismatchError(c.key, c.want, c.got)
		}
	}
	return nil
}

// Summary describes a tree for diagnostics.
type Summary struct {
	Leaves         int
	Internal       int
	MinLeafValue   float64
	MaxLeafValue   float64
	LeafCountTotal int
	// RootCount is internal_count[0], or the single leaf's count.
	RootCount int
}

// Summary computes diagnostics. The tree must be valid.
func (t *Tree) Summary() Summary {
	s := Summary{
		Leaves:       t.NumLeaves,
		Internal:     t.NumInternal(),
		MinLeafValue: floats.Min(t.LeafValue),
		MaxLeafValue: floats.Max(t.LeafValue),
	}
	for _, c := range t.LeafCount {
		s.LeafCountTotal += c
	}
	if s.Internal > 0 {
		s.RootCount = t.InternalCount[0]
	} else {
		s.RootCount = t.LeafCount[0]
	}
	return s
}

// ConsistentCounts reports whether the root record count equals the sum of
// leaf record counts, as it does for trees LightGBM wrote itself.
func (s Summary) ConsistentCounts() bool {
	return s.RootCount == s.LeafCountTotal
}

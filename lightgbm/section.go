package lightgbm

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

// Section supplies the typed values of one "Tree=N" block by key.
type Section interface {
	// Int returns a scalar integer value.
	Int(key string) (int, error)
	// IntArray returns exactly n integers or a length mismatch error.
	IntArray(key string, n int) ([]int, error)
	// DoubleArray returns exactly n floats or a length mismatch error.
	DoubleArray(key string, n int) ([]float64, error)
}

// Keys read by Load.
const (
	KeyNumLeaves     = "num_leaves"
	KeyLeftChild     = "left_child"
	KeyRightChild    = "right_child"
	KeySplitFeature  = "split_feature"
	KeyThreshold     = "threshold"
	KeyLeafValue     = "leaf_value"
	KeyLeafCount     = "leaf_count"
	KeyInternalValue = "internal_value"
	KeyInternalCount = "internal_count"
)

// MapSection is a Section over raw "key=value" text already split by the
// caller, with array values separated by whitespace.
type MapSection map[string]string

func (s MapSection) lookup(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", errors.NewFormatError(key, "key not found")
	}
	return strings.TrimSpace(v), nil
}

// Int implements Section.
func (s MapSection) Int(key string) (int, error) {
	v, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.NewFormatErrorf(key, "not an integer: %q", v)
	}
	return n, nil
}

// IntArray implements Section.
func (s MapSection) IntArray(key string, n int) ([]int, error) {
	v, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	parts := strings.Fields(v)
	if len(parts) != n {
		return nil, errors.LengthMismatchError(key, n, len(parts))
	}
	result := make([]int, n)
	for i, part := range parts {
		val, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.NewFormatErrorf(key, "element %d is not an integer: %q", i, part)
		}
		result[i] = val
	}
	return result, nil
}

// DoubleArray implements Section.
func (s MapSection) DoubleArray(key string, n int) ([]float64, error) {
	v, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	parts := strings.Fields(v)
	if len(parts) != n {
		return nil, errors.LengthMismatchError(key, n, len(parts))
	}
	result := make([]float64, n)
	for i, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.NewFormatErrorf(key, "element %d is not a number: %q", i, part)
		}
		result[i] = val
	}
	return result, nil
}

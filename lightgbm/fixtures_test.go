package lightgbm

import (
	"strconv"
	"strings"
)

// scenarioSection is a three-leaf tree: the root splits the binary feature 0
// at 0.5, its right child splits the continuous feature 1 at 10.
func scenarioSection() MapSection {
	return MapSection{
		KeyNumLeaves:     "3",
		KeyLeftChild:     "-1 -2",
		KeyRightChild:    "1 -3",
		KeySplitFeature:  "0 1",
		KeyThreshold:     "0.5 10",
		KeyLeafValue:     "1 2 3",
		KeyLeafCount:     "10 6 4",
		KeyInternalValue: "0 0",
		KeyInternalCount: "20 10",
	}
}

func scenarioTree() *Tree {
	return &Tree{
		NumLeaves:     3,
		LeftChild:     []int{-1, -2},
		RightChild:    []int{1, -3},
		SplitFeature:  []int{0, 1},
		Threshold:     []float64{0.5, 10},
		LeafValue:     []float64{1, 2, 3},
		LeafCount:     []int{10, 6, 4},
		InternalValue: []float64{0, 0},
		InternalCount: []int{20, 10},
	}
}

// chainTree builds a right-leaning chain of n internal nodes, each with a
// leaf on the left, splitting feature 0 at its own index.
func chainTree(n int) *Tree {
	t := &Tree{
		NumLeaves:     n + 1,
		LeftChild:     make([]int, n),
		RightChild:    make([]int, n),
		SplitFeature:  make([]int, n),
		Threshold:     make([]float64, n),
		LeafValue:     make([]float64, n+1),
		LeafCount:     make([]int, n+1),
		InternalValue: make([]float64, n),
		InternalCount: make([]int, n),
	}
	for i := 0; i < n; i++ {
		t.LeftChild[i] = ^i
		t.RightChild[i] = i + 1
		t.Threshold[i] = float64(i) + 1.25
		t.InternalCount[i] = n + 1 - i
	}
	t.RightChild[n-1] = ^n
	for i := 0; i <= n; i++ {
		t.LeafValue[i] = float64(i) / 4
		t.LeafCount[i] = 1
	}
	return t
}

// sectionOf renders t back into key=value text.
func sectionOf(t *Tree) MapSection {
	ints := func(v []int) string {
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = strconv.Itoa(x)
		}
		return strings.Join(parts, " ")
	}
	doubles := func(v []float64) string {
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		return strings.Join(parts, " ")
	}
	return MapSection{
		KeyNumLeaves:     strconv.Itoa(t.NumLeaves),
		KeyLeftChild:     ints(t.LeftChild),
		KeyRightChild:    ints(t.RightChild),
		KeySplitFeature:  ints(t.SplitFeature),
		KeyThreshold:     doubles(t.Threshold),
		KeyLeafValue:     doubles(t.LeafValue),
		KeyLeafCount:     ints(t.LeafCount),
		KeyInternalValue: doubles(t.InternalValue),
		KeyInternalCount: ints(t.InternalCount),
	}
}

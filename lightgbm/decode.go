package lightgbm

import (
	"strconv"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
	"github.com/YuminosukeSato/lgbmpmml/pmml"
)

// frame is one pending step of the decode work stack.
type frame struct {
	ref       NodeRef
	predicate pmml.Predicate
	// expanded is set once the children have been pushed; popping an
	// expanded frame assembles the internal node from the two finished
	// children on top of the output stack.
	expanded bool
}

// Decode expands t into a node tree whose root is guarded by pmml.True.
//
// The traversal uses an explicit stack, so memory is proportional to the
// number of nodes and independent of tree height. Children are finished
// before their parent is built; every node is immutable once created.
//
// Splits on a pmml.BinaryFeature must cut at exactly 0.5 and become
// notEqual/equal tests against the indicator value; all other splits become
// lessOrEqual/greaterThan tests against the canonical threshold text, left
// branch first.
func Decode(t *Tree, schema *pmml.Schema) (*pmml.Node, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	numInternal := t.NumInternal()
	seenInternal := make([]bool, numInternal)
	seenLeaf := make([]bool, t.NumLeaves)
	visitedInternal, visitedLeaves := 0, 0

	stack := make([]frame, 0, 2*numInternal+1)
	stack = append(stack, frame{ref: t.Root(), predicate: pmml.True{}})
	built := make([]*pmml.Node, 0, numInternal+1)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.ref.IsLeaf() {
			li := f.ref.Index()
			if li >= t.NumLeaves {
				return nil, errors.NewFormatErrorf("", "%s out of range, tree has %d leaves", f.ref, t.NumLeaves)
			}
			if seenLeaf[li] {
				return nil, errors.NewFormatErrorf("", "%s referenced more than once", f.ref)
			}
			seenLeaf[li] = true
			visitedLeaves++

			built = append(built, pmml.NewLeaf(
				strconv.Itoa(f.ref.Raw()),
				f.predicate,
				pmml.FormatValue(t.LeafValue[li]),
				float64(t.LeafCount[li]),
			))
			continue
		}

		i := f.ref.Index()
		if f.expanded {
			left, right := built[len(built)-2], built[len(built)-1]
			built = built[:len(built)-2]
			built = append(built, pmml.NewInternal(strconv.Itoa(i), f.predicate, float64(t.InternalCount[i]), left, right))
			continue
		}

		if i >= numInternal {
			return nil, errors.NewFormatErrorf("", "%s out of range, tree has %d internal nodes", f.ref, numInternal)
		}
		if seenInternal[i] {
			return nil, errors.NewFormatErrorf("", "%s referenced more than once", f.ref)
		}
		seenInternal[i] = true
		visitedInternal++

		leftPredicate, rightPredicate, err := splitPredicates(t, i, schema)
		if err != nil {
			return nil, err
		}

		f.expanded = true
		stack = append(stack,
			f,
			frame{ref: RefOf(t.RightChild[i]), predicate: rightPredicate},
			frame{ref: RefOf(t.LeftChild[i]), predicate: leftPredicate},
		)
	}

	if visitedInternal != numInternal || visitedLeaves != t.NumLeaves {
		return nil, errors.NewFormatErrorf("", "reached %d of %d internal nodes and %d of %d leaves",
			visitedInternal, numInternal, visitedLeaves, t.NumLeaves)
	}
	return built[0], nil
}

// splitPredicates returns the left and right edge predicates of internal
// node i.
func splitPredicates(t *Tree, i int, schema *pmml.Schema) (left, right pmml.Predicate, err error) {
	index := t.SplitFeature[i]
	feature, err := schema.Feature(index)
	if err != nil {
		return nil, nil, errors.NewMissingFeatureError(i, index, schema.Len())
	}

	threshold := t.Threshold[i]
	if binary, ok := feature.(pmml.BinaryFeature); ok {
		if threshold != BinaryThreshold {
			return nil, nil, errors.NewInvalidSplitError(i, binary.Name, threshold)
		}
		left = pmml.NewSimplePredicate(binary.Name, pmml.OperatorNotEqual, binary.Value)
		right = pmml.NewSimplePredicate(binary.Name, pmml.OperatorEqual, binary.Value)
		return left, right, nil
	}

	name := feature.FieldName()
	value := pmml.FormatValue(threshold)
	left = pmml.NewSimplePredicate(name, pmml.OperatorLessOrEqual, value)
	right = pmml.NewSimplePredicate(name, pmml.OperatorGreaterThan, value)
	return left, right, nil
}

// EncodeTreeModel decodes t and wraps it into a binary-split regression
// TreeModel over schema.
func EncodeTreeModel(t *Tree, schema *pmml.Schema) (*pmml.TreeModel, error) {
	root, err := Decode(t, schema)
	if err != nil {
		return nil, err
	}
	return pmml.NewTreeModel(schema, root), nil
}

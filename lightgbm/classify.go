package lightgbm

import (
	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

// BinaryThreshold is the only cut point LightGBM produces for a 0/1
// indicator feature.
const BinaryThreshold = 0.5

// FeatureKind is how a feature behaves across the splits that use it.
type FeatureKind int

const (
	// Unreferenced means no split uses the feature.
	Unreferenced FeatureKind = iota
	// Binary means every split on the feature cuts at exactly 0.5.
	Binary
	// Continuous means at least one split cuts elsewhere.
	Continuous
)

func (k FeatureKind) String() string {
	switch k {
	case Unreferenced:
		return "unreferenced"
	case Binary:
		return "binary"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Combine reduces two observations of the same feature. Continuous
// dominates, then Binary; Unreferenced is the identity.
func Combine(a, b FeatureKind) FeatureKind {
	if a == Continuous || b == Continuous {
		return Continuous
	}
	if a == Binary || b == Binary {
		return Binary
	}
	return Unreferenced
}

// CombineKinds folds Combine over kinds.
func CombineKinds(kinds ...FeatureKind) FeatureKind {
	result := Unreferenced
	for _, k := range kinds {
		result = Combine(result, k)
		if result == Continuous {
			break
		}
	}
	return result
}

// FeatureKind classifies feature within this tree. The first split on it
// with a threshold other than 0.5 decides Continuous.
func (t *Tree) FeatureKind(feature int) FeatureKind {
	result := Unreferenced
	for i, f := range t.SplitFeature {
		if f != feature {
			continue
		}
		if t.Threshold[i] != BinaryThreshold {
			return Continuous
		}
		result = Binary
	}
	return result
}

// featureKinds classifies every feature of this tree in one pass.
func (t *Tree) featureKinds(numFeatures int) ([]FeatureKind, error) {
	kinds := make([]FeatureKind, numFeatures)
	for i, f := range t.SplitFeature {
		if f < 0 || f >= numFeatures {
			return nil, errors.NewMissingFeatureError(i, f, numFeatures)
		}
		kind := Binary
		if t.Threshold[i] != BinaryThreshold {
			kind = Continuous
		}
		kinds[f] = Combine(kinds[f], kind)
	}
	return kinds, nil
}

// ClassifyFeatures classifies features 0..numFeatures-1 across all trees:
// a feature is Continuous if any tree finds it Continuous, else Binary if
// any tree uses it, else Unreferenced.
func ClassifyFeatures(trees []*Tree, numFeatures int) ([]FeatureKind, error) {
	global := make([]FeatureKind, numFeatures)
	for ti, t := range trees {
		if err := t.Validate(); err != nil {
			return nil, errors.NewConversionError(ti, err)
		}
		local, err := t.featureKinds(numFeatures)
		if err != nil {
			return nil, errors.NewConversionError(ti, err)
		}
		for f, k := range local {
			global[f] = Combine(global[f], k)
		}
	}
	return global, nil
}

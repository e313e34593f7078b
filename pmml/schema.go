package pmml

import (
	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

// Feature is one column of the ordered feature table that split_feature
// indexes into.
type Feature interface {
	// FieldName is the data field a predicate on this feature refers to.
	FieldName() string
}

// BinaryFeature is an indicator: the split asks whether Field equals Value.
// Several binary features may share one field (one per category).
type BinaryFeature struct {
	Name  string
	Value string
}

// FieldName implements Feature.
func (f BinaryFeature) FieldName() string { return f.Name }

// ContinuousFeature is split by numeric thresholds.
type ContinuousFeature struct {
	Name string
}

// FieldName implements Feature.
func (f ContinuousFeature) FieldName() string { return f.Name }

// Schema is the read-only feature table shared by every tree of an ensemble.
type Schema struct {
	target   string
	features []Feature
}

// NewSchema copies features into a new Schema. target may be empty.
func NewSchema(target string, features []Feature) *Schema {
	fs := make([]Feature, len(features))
	copy(fs, features)
	return &Schema{target: target, features: fs}
}

// Target returns the target field name, or "" if none was declared.
func (s *Schema) Target() string { return s.target }

// Len returns the number of features.
func (s *Schema) Len() int { return len(s.features) }

// Feature returns feature i, or a MissingFeatureError when i is out of range.
func (s *Schema) Feature(i int) (Feature, error) {
	if i < 0 || i >= len(s.features) {
		return nil, errors.NewMissingFeatureError(-1, i, len(s.features))
	}
	return s.features[i], nil
}

// Features returns a copy of the feature table.
func (s *Schema) Features() []Feature {
	fs := make([]Feature, len(s.features))
	copy(fs, s.features)
	return fs
}

// FieldNames returns the distinct field names in feature order.
func (s *Schema) FieldNames() []string {
	seen := make(map[string]struct{}, len(s.features))
	names := make([]string, 0, len(s.features))
	for _, f := range s.features {
		name := f.FieldName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

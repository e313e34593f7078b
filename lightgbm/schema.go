package lightgbm

import (
	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
	"github.com/YuminosukeSato/lgbmpmml/pmml"
)

// DefaultIndicatorValue is the category value a binary feature tests for
// unless overridden.
const DefaultIndicatorValue = "1"

type schemaConfig struct {
	target     string
	indicator  string
	indicators map[int]string
}

// SchemaOption configures BuildSchema.
type SchemaOption func(*schemaConfig)

// WithTarget declares the target field of the mining schema.
func WithTarget(name string) SchemaOption {
	return func(c *schemaConfig) {
		c.target = name
	}
}

// WithIndicatorValue sets the value every binary feature is compared to.
func WithIndicatorValue(value string) SchemaOption {
	return func(c *schemaConfig) {
		if value != "" {
			c.indicator = value
		}
	}
}

// WithFeatureIndicator overrides the indicator value of one feature.
func WithFeatureIndicator(feature int, value string) SchemaOption {
	return func(c *schemaConfig) {
		c.indicators[feature] = value
	}
}

// BuildSchema classifies every feature across trees before any tree is
// decoded. Features that are Binary across the whole ensemble become
// pmml.BinaryFeature; all others, including unreferenced ones, become
// pmml.ContinuousFeature.
func BuildSchema(names []string, trees []*Tree, opts ...SchemaOption) (*pmml.Schema, error) {
	cfg := schemaConfig{
		indicator:  DefaultIndicatorValue,
		indicators: make(map[int]string),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	kinds, err := ClassifyFeatures(trees, len(names))
	if err != nil {
		return nil, err
	}

	features := make([]pmml.Feature, len(names))
	for i, name := range names {
		if kinds[i] != Binary {
			features[i] = pmml.ContinuousFeature{Name: name}
			continue
		}
		value, ok := cfg.indicators[i]
		if !ok {
			value = cfg.indicator
		}
		features[i] = pmml.BinaryFeature{Name: name, Value: value}
	}
	return pmml.NewSchema(cfg.target, features), nil
}

// Validate checks an externally built schema against the global
// classification of trees: every referenced feature must exist, and a
// feature the schema declares binary must not be split anywhere at a
// threshold other than 0.5. The first offending split is reported as a
// ConversionError carrying the tree index.
func Validate(trees []*Tree, schema *pmml.Schema) error {
	for ti, t := range trees {
		if err := t.Validate(); err != nil {
			return errors.NewConversionError(ti, err)
		}
		for i, f := range t.SplitFeature {
			feature, err := schema.Feature(f)
			if err != nil {
				return errors.NewConversionError(ti, errors.NewMissingFeatureError(i, f, schema.Len()))
			}
			binary, ok := feature.(pmml.BinaryFeature)
			if ok && t.Threshold[i] != BinaryThreshold {
				return errors.NewConversionError(ti, errors.NewInvalidSplitError(i, binary.Name, t.Threshold[i]))
			}
		}
	}
	return nil
}

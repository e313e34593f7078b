package lightgbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
	"github.com/YuminosukeSato/lgbmpmml/pmml"
)

func TestBuildSchema(t *testing.T) {
	trees := []*Tree{scenarioTree(), splitsOn(0.5)}

	t.Run("defaults", func(t *testing.T) {
		schema, err := BuildSchema([]string{"f0", "f1", "unused"}, trees)
		require.NoError(t, err)
		assert.Equal(t, "", schema.Target())
		assert.Equal(t, []pmml.Feature{
			pmml.BinaryFeature{Name: "f0", Value: DefaultIndicatorValue},
			pmml.ContinuousFeature{Name: "f1"},
			pmml.ContinuousFeature{Name: "unused"},
		}, schema.Features())
	})

	t.Run("options", func(t *testing.T) {
		schema, err := BuildSchema([]string{"f0", "f1"}, trees,
			WithTarget("y"),
			WithIndicatorValue("true"),
			WithFeatureIndicator(0, "A"),
			WithFeatureIndicator(1, "ignored"),
		)
		require.NoError(t, err)
		assert.Equal(t, "y", schema.Target())
		assert.Equal(t, []pmml.Feature{
			pmml.BinaryFeature{Name: "f0", Value: "A"},
			pmml.ContinuousFeature{Name: "f1"},
		}, schema.Features())
	})

	t.Run("empty indicator keeps default", func(t *testing.T) {
		schema, err := BuildSchema([]string{"f0", "f1"}, trees, WithIndicatorValue(""))
		require.NoError(t, err)
		f, err := schema.Feature(0)
		require.NoError(t, err)
		assert.Equal(t, pmml.BinaryFeature{Name: "f0", Value: "1"}, f)
	})

	t.Run("continuous elsewhere demotes binary", func(t *testing.T) {
		schema, err := BuildSchema([]string{"f0", "f1"}, append(trees, splitsOn(0.5, 2)))
		require.NoError(t, err)
		f, err := schema.Feature(0)
		require.NoError(t, err)
		assert.Equal(t, pmml.ContinuousFeature{Name: "f0"}, f)
	})

	t.Run("too few names", func(t *testing.T) {
		_, err := BuildSchema([]string{"f0"}, trees)
		assert.True(t, errors.Is(err, errors.ErrMissingFeature))
	})
}

func TestValidate(t *testing.T) {
	trees := []*Tree{splitsOn(0.5), scenarioTree()}

	require.NoError(t, Validate(trees, scenarioSchema()))

	t.Run("binary declared for continuous feature", func(t *testing.T) {
		schema := pmml.NewSchema("", []pmml.Feature{
			pmml.BinaryFeature{Name: "f0", Value: "1"},
			pmml.BinaryFeature{Name: "f1", Value: "1"},
		})
		err := Validate(trees, schema)
		require.Error(t, err)
		var ce *errors.ConversionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, 1, ce.Tree)
		var ise *errors.InvalidSplitError
		require.True(t, errors.As(err, &ise))
		assert.Equal(t, 1, ise.Node)
		assert.Equal(t, "f1", ise.Feature)
		assert.Equal(t, 10.0, ise.Threshold)
	})

	t.Run("missing feature", func(t *testing.T) {
		err := Validate(trees, continuousSchema(1))
		require.Error(t, err)
		var mf *errors.MissingFeatureError
		require.True(t, errors.As(err, &mf))
		assert.Equal(t, 1, mf.Node)
	})

	t.Run("malformed tree", func(t *testing.T) {
		broken := scenarioTree()
		broken.LeftChild = nil
		err := Validate([]*Tree{broken}, scenarioSchema())
		assert.True(t, errors.Is(err, errors.ErrFormat))
	})
}

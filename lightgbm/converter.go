package lightgbm

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/lgbmpmml/core/parallel"
	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
	"github.com/YuminosukeSato/lgbmpmml/pkg/log"
	"github.com/YuminosukeSato/lgbmpmml/pkg/metrics"
	"github.com/YuminosukeSato/lgbmpmml/pmml"
)

const defaultSequentialThreshold = 4

// Converter decodes the trees of an ensemble concurrently. Trees share only
// the read-only schema, so no locking is involved.
type Converter struct {
	workers             int
	sequentialThreshold int
	logger              log.Logger
	metrics             *metrics.Manager
}

// NewConverter creates a Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		sequentialThreshold: defaultSequentialThreshold,
		logger:              log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(log.ComponentKey, "lightgbm")
	return c
}

// Convert encodes every tree against schema. On the first failure it
// returns a ConversionError naming the tree and no models at all.
// Cancelling ctx stops workers between trees.
func (c *Converter) Convert(ctx context.Context, trees []*Tree, schema *pmml.Schema) ([]*pmml.TreeModel, error) {
	start := time.Now()
	logger := c.logger.With(log.RunIDKey, uuid.NewString())
	models := make([]*pmml.TreeModel, len(trees))

	err := parallel.ParallelizeWithThreshold(ctx, len(trees), c.sequentialThreshold, c.workers,
		func(ctx context.Context, lo, hi int) error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				model, err := c.convertTree(logger, i, trees[i], schema)
				if err != nil {
					return errors.NewConversionError(i, err)
				}
				models[i] = model
			}
			return nil
		})
	if err != nil {
		c.metrics.RecordError(errors.Kind(err))
		logger.Error("Conversion failed", err,
			log.OperationKey, log.OperationConvert,
			log.ErrorTypeKey, errors.Kind(err),
		)
		return nil, err
	}

	elapsed := time.Since(start)
	c.metrics.RecordConversion(elapsed)
	logger.Info("Conversion completed",
		log.OperationKey, log.OperationConvert,
		log.TreesKey, len(trees),
		log.FeaturesKey, schema.Len(),
		log.WorkersKey, c.workers,
		log.DurationMsKey, elapsed.Milliseconds(),
	)
	return models, nil
}

func (c *Converter) convertTree(logger log.Logger, index int, t *Tree, schema *pmml.Schema) (model *pmml.TreeModel, err error) {
	defer errors.Recover(&err, "decode tree "+strconv.Itoa(index))

	start := time.Now()
	model, err = EncodeTreeModel(t, schema)
	if err != nil {
		return nil, err
	}

	summary := t.Summary()
	if !summary.ConsistentCounts() {
		errors.Warn(errors.NewRecordCountWarning(index, summary.RootCount, summary.LeafCountTotal))
	}

	c.metrics.RecordTree(summary.Leaves+summary.Internal, time.Since(start))
	if logger.Enabled(context.Background(), log.LevelDebug) {
		stats := model.Node.Stats()
		logger.Debug("Tree decoded",
			log.TreeIndexKey, index,
			log.LeavesKey, stats.Leaves,
			log.DepthKey, stats.Depth,
		)
	}
	return model, nil
}

// ConvertSections loads every section, builds the schema from the global
// feature classification and converts all trees. Any load failure aborts the
// whole conversion.
func (c *Converter) ConvertSections(ctx context.Context, sections []Section, names []string, opts ...SchemaOption) ([]*pmml.TreeModel, *pmml.Schema, error) {
	trees := make([]*Tree, len(sections))
	for i, s := range sections {
		t, err := Load(s)
		if err != nil {
			err = errors.NewConversionError(i, err)
			c.metrics.RecordError(errors.Kind(err))
			c.logger.Error("Tree load failed", err, log.OperationKey, log.OperationLoad, log.TreeIndexKey, i)
			return nil, nil, err
		}
		trees[i] = t
	}

	schema, err := BuildSchema(names, trees, opts...)
	if err != nil {
		c.metrics.RecordError(errors.Kind(err))
		c.logger.Error("Feature classification failed", err, log.OperationKey, log.OperationClassify)
		return nil, nil, err
	}
	if c.logger.Enabled(ctx, log.LevelDebug) {
		for i, f := range schema.Features() {
			_, binary := f.(pmml.BinaryFeature)
			c.logger.Debug("Feature classified",
				log.FeatureIndexKey, i,
				log.FeatureNameKey, f.FieldName(),
				log.BinaryKey, binary,
			)
		}
	}

	models, err := c.Convert(ctx, trees, schema)
	if err != nil {
		return nil, nil, err
	}
	return models, schema, nil
}

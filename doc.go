// Package lgbmpmml converts LightGBM decision trees into PMML TreeModels.
//
// LightGBM stores each tree as a set of parallel arrays: a signed child
// index per internal node (negative values address leaves), the split
// feature and threshold per internal node, and a value and record count per
// leaf. The converter rebuilds the tree as nested nodes guarded by PMML
// predicates, so that any PMML scoring engine can evaluate it.
//
// # Packages
//
//   - lightgbm: reading tree sections, feature classification, decoding and
//     concurrent conversion of an ensemble
//   - pmml: the decoded node model, predicates, XML encoding and Graphviz
//     rendering
//   - pkg/errors: typed errors and the warning hook
//   - pkg/log: structured logging on slog or zerolog
//   - pkg/metrics: Prometheus collectors for conversions
//
// # Quick Start
//
//	sections := []lightgbm.Section{lightgbm.MapSection{
//	    "num_leaves":     "3",
//	    "left_child":     "-1 -2",
//	    "right_child":    "1 -3",
//	    "split_feature":  "0 1",
//	    "threshold":      "0.5 10",
//	    "leaf_value":     "1 2 3",
//	    "leaf_count":     "10 6 4",
//	    "internal_value": "0 0",
//	    "internal_count": "20 10",
//	}}
//
//	converter := lightgbm.NewConverter(lightgbm.WithWorkers(4))
//	models, _, err := converter.ConvertSections(ctx, sections, []string{"flag", "x"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = models[0].WriteXML(os.Stdout)
//
// Feature 0 above is only ever split at 0.5, so it becomes a binary
// indicator tested with equal/notEqual; feature 1 is continuous and tested
// with lessOrEqual/greaterThan.
//
// # Error Handling
//
// Malformed sections fail with errors.FormatError, binary features split
// anywhere but 0.5 with errors.InvalidSplitError, and out-of-range feature
// indexes with errors.MissingFeatureError. Ensemble conversion wraps the
// first failure in errors.ConversionError naming the tree and returns no
// partial output.
package lgbmpmml

// Package lightgbm decodes trees from LightGBM's array based model
// serialization and re-encodes them as PMML TreeModels.
//
// A LightGBM text model stores each tree as parallel arrays. Internal nodes
// are addressed by non-negative indices; a negative child value v addresses
// leaf ^v. Load reads these arrays from a Section, Decode expands them into a
// pmml.Node tree without recursion, and the classifier decides per feature
// whether it only ever appears as a 0.5 indicator cut, in which case splits
// on it become equality tests instead of thresholds.
//
// Typical use over a whole ensemble:
//
//	trees := make([]*lightgbm.Tree, len(sections))
//	for i, s := range sections {
//	    t, err := lightgbm.Load(s)
//	    if err != nil {
//	        return err
//	    }
//	    trees[i] = t
//	}
//	schema, err := lightgbm.BuildSchema(featureNames, trees)
//	if err != nil {
//	    return err
//	}
//	models, err := lightgbm.NewConverter().Convert(ctx, trees, schema)
//
// Computing the ensemble's aggregate score is left to the caller.
package lightgbm

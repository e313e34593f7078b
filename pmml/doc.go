// Package pmml holds the predicate-based decision tree representation that
// LightGBM trees are converted into, together with the feature table used
// to name split fields.
//
// A converted tree is a TreeModel whose root Node carries the True
// predicate. Every internal Node has exactly two children, each guarded by
// a SimplePredicate over one field; leaves carry a canonical textual score.
//
//	model, err := lightgbm.EncodeTreeModel(tree, schema)
//	if err != nil {
//	    return err
//	}
//	if err := model.WriteXML(os.Stdout); err != nil {
//	    return err
//	}
//
// Numbers written into predicates and scores go through FormatValue, which
// yields the shortest decimal text that parses back to the same float64.
package pmml

// Standard attribute keys for conversion logging.
//
// Keys follow a hierarchical naming convention ("tree.index", "node.id") so
// that log lines from concurrent tree workers can be filtered and grouped.

package log

// Component and operation context.
const (
	// ComponentKey identifies which package is logging.
	// Examples: "lightgbm", "pmml", "config"
	ComponentKey = "component"

	// OperationKey names the operation being performed.
	OperationKey = "operation"

	// RunIDKey correlates the records of one ensemble conversion.
	RunIDKey = "conversion.id"
)

// Tree shape.
const (
	// TreeIndexKey is the position of the tree inside the ensemble.
	TreeIndexKey = "tree.index"

	// TreesKey is the number of trees in a conversion batch.
	TreesKey = "tree.count"

	// LeavesKey is num_leaves of a tree.
	LeavesKey = "tree.leaves"

	// DepthKey is the maximum depth reached while decoding.
	DepthKey = "tree.depth"

	// NodeIDKey is the identifier of a decoded node.
	NodeIDKey = "node.id"
)

// Features.
const (
	FeatureIndexKey = "feature.index"
	FeatureNameKey  = "feature.name"
	FeaturesKey     = "feature.count"
	BinaryKey       = "feature.binary"
)

// Performance and concurrency.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey is the number of decode workers.
	WorkersKey = "perf.workers"
)

// Error context.
const (
	// ErrorTypeKey categorizes the error, see errors.Kind.
	ErrorTypeKey = "error.type"
)

// Standard operation values.
const (
	OperationLoad     = "load"
	OperationClassify = "classify"
	OperationDecode   = "decode"
	OperationEncode   = "encode"
	OperationConvert  = "convert"
)

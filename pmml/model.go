package pmml

// MiningFunction declares what a model predicts.
type MiningFunction string

// MiningFunctionRegression marks scalar leaf scores.
const MiningFunctionRegression MiningFunction = "regression"

// SplitCharacteristic declares the branching structure of a tree.
type SplitCharacteristic string

// BinarySplit means every internal node has exactly two children.
const BinarySplit SplitCharacteristic = "binarySplit"

// UsageType of a mining field.
type UsageType string

const (
	UsageActive UsageType = "active"
	UsageTarget UsageType = "target"
)

// MiningField names one field the model reads or predicts.
type MiningField struct {
	Name      string
	UsageType UsageType
}

// MiningSchema lists the fields of a model.
type MiningSchema struct {
	Fields []MiningField
}

// NewMiningSchema lists the schema's target (if any) followed by its
// distinct active fields.
func NewMiningSchema(schema *Schema) MiningSchema {
	var ms MiningSchema
	if target := schema.Target(); target != "" {
		ms.Fields = append(ms.Fields, MiningField{Name: target, UsageType: UsageTarget})
	}
	for _, name := range schema.FieldNames() {
		ms.Fields = append(ms.Fields, MiningField{Name: name, UsageType: UsageActive})
	}
	return ms
}

// TreeModel is a single converted tree.
type TreeModel struct {
	FunctionName        MiningFunction
	SplitCharacteristic SplitCharacteristic
	MiningSchema        MiningSchema
	Node                *Node
}

// NewTreeModel wraps a decoded root into a binary-split regression model.
func NewTreeModel(schema *Schema, root *Node) *TreeModel {
	return &TreeModel{
		FunctionName:        MiningFunctionRegression,
		SplitCharacteristic: BinarySplit,
		MiningSchema:        NewMiningSchema(schema),
		Node:                root,
	}
}

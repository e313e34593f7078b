package pmml

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type xmlPredicate struct {
	Field    string `xml:"field,attr"`
	Operator string `xml:"operator,attr"`
	Value    string `xml:"value,attr"`
}

type xmlNode struct {
	ID          string        `xml:"id,attr"`
	Score       *string       `xml:"score,attr"`
	RecordCount string        `xml:"recordCount,attr"`
	True        *struct{}     `xml:"True"`
	Simple      *xmlPredicate `xml:"SimplePredicate"`
	Nodes       []xmlNode     `xml:"Node"`
}

type xmlTreeModel struct {
	XMLName             xml.Name `xml:"TreeModel"`
	FunctionName        string   `xml:"functionName,attr"`
	SplitCharacteristic string   `xml:"splitCharacteristic,attr"`
	MiningFields        []struct {
		Name      string `xml:"name,attr"`
		UsageType string `xml:"usageType,attr"`
	} `xml:"MiningSchema>MiningField"`
	Node xmlNode `xml:"Node"`
}

func TestTreeModelWriteXML(t *testing.T) {
	schema := NewSchema("y", []Feature{
		BinaryFeature{Name: "flag", Value: "1"},
		ContinuousFeature{Name: "x"},
	})
	model := NewTreeModel(schema, sampleTree())

	var buf bytes.Buffer
	require.NoError(t, model.WriteXML(&buf))

	var decoded xmlTreeModel
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded), buf.String())

	assert.Equal(t, "regression", decoded.FunctionName)
	assert.Equal(t, "binarySplit", decoded.SplitCharacteristic)
	require.Len(t, decoded.MiningFields, 3)
	assert.Equal(t, "y", decoded.MiningFields[0].Name)
	assert.Equal(t, "target", decoded.MiningFields[0].UsageType)
	assert.Equal(t, "", decoded.MiningFields[1].UsageType)

	root := decoded.Node
	assert.Equal(t, "0", root.ID)
	assert.NotNil(t, root.True)
	assert.Nil(t, root.Score, "internal nodes carry no score")
	assert.Equal(t, "20", root.RecordCount)
	require.Len(t, root.Nodes, 2)

	left := root.Nodes[0]
	require.NotNil(t, left.Simple)
	assert.Equal(t, xmlPredicate{Field: "flag", Operator: "notEqual", Value: "1"}, *left.Simple)
	require.NotNil(t, left.Score)
	assert.Equal(t, "1", *left.Score)

	right := root.Nodes[1]
	assert.Equal(t, "1", right.ID)
	require.Len(t, right.Nodes, 2)
	assert.Equal(t, "lessOrEqual", right.Nodes[0].Simple.Operator)
	assert.Equal(t, "greaterThan", right.Nodes[1].Simple.Operator)

	// predicate element precedes child nodes
	out := buf.String()
	assert.Less(t, strings.Index(out, "<True>"), strings.Index(out, `<Node id="-1"`))
}

func TestTreeModelWriteXMLDeepChain(t *testing.T) {
	const depth = 20000
	node := NewLeaf("-1", True{}, "0", 1)
	for i := depth - 1; i >= 0; i-- {
		node = NewInternal(strconv.Itoa(i), True{}, 2, NewLeaf(strconv.Itoa(-i-2), True{}, "0", 1), node)
	}
	model := NewTreeModel(NewSchema("", nil), node)

	var buf bytes.Buffer
	require.NoError(t, model.WriteXML(&buf))
	assert.Equal(t, 2*depth+1, strings.Count(buf.String(), "<Node "))
}

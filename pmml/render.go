package pmml

import (
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

// RenderDOT writes model's tree to w in Graphviz DOT format. Internal nodes
// are labelled with their id and record count, leaves with their score, and
// edges with the predicate guarding the child.
func RenderDOT(model *TreeModel, w io.Writer) (err error) {
	if model == nil || model.Node == nil {
		return errors.New("render: empty model")
	}

	gv := graphviz.New()
	defer func() {
		if cerr := gv.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	graph, err := gv.Graph()
	if err != nil {
		return errors.Wrap(err, "render: create graph")
	}
	defer func() {
		if cerr := graph.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	type edge struct {
		parent *cgraph.Node
		child  *Node
	}
	stack := []edge{{child: model.Node}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := top.child
		gn, err := graph.CreateNode("n" + n.ID)
		if err != nil {
			return errors.Wrapf(err, "render: node %s", n.ID)
		}
		if n.IsLeaf() {
			gn.Set("label", n.Score)
			gn.Set("shape", "box")
		} else {
			gn.Set("label", "#"+n.ID+" ("+FormatValue(n.RecordCount)+")")
		}

		if top.parent != nil {
			e, err := graph.CreateEdge("", top.parent, gn)
			if err != nil {
				return errors.Wrapf(err, "render: edge to %s", n.ID)
			}
			e.SetLabel(n.Predicate.String())
		}

		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, edge{parent: gn, child: n.Children[i]})
		}
	}

	if err := gv.Render(graph, graphviz.XDOT, w); err != nil {
		return errors.Wrap(err, "render: dot")
	}
	return nil
}

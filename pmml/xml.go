package pmml

import (
	"encoding/xml"
	"io"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// MarshalXML writes the PMML TreeModel element. The enclosing PMML document
// (Header, DataDictionary) is left to the caller.
func (m *TreeModel) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "TreeModel"}
	start.Attr = []xml.Attr{
		attr("functionName", string(m.FunctionName)),
		attr("splitCharacteristic", string(m.SplitCharacteristic)),
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeMiningSchema(e, m.MiningSchema); err != nil {
		return err
	}
	if m.Node != nil {
		if err := encodeNodes(e, m.Node); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// WriteXML encodes m as indented XML.
func (m *TreeModel) WriteXML(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, "encode TreeModel")
	}
	return errors.Wrap(enc.Flush(), "flush TreeModel")
}

func encodeMiningSchema(e *xml.Encoder, ms MiningSchema) error {
	start := xml.StartElement{Name: xml.Name{Local: "MiningSchema"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, f := range ms.Fields {
		field := xml.StartElement{
			Name: xml.Name{Local: "MiningField"},
			Attr: []xml.Attr{attr("name", f.Name)},
		}
		if f.UsageType != "" && f.UsageType != UsageActive {
			field.Attr = append(field.Attr, attr("usageType", string(f.UsageType)))
		}
		if err := e.EncodeToken(field); err != nil {
			return err
		}
		if err := e.EncodeToken(field.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func encodePredicate(e *xml.Encoder, p Predicate) error {
	var start xml.StartElement
	switch p := p.(type) {
	case True, nil:
		start = xml.StartElement{Name: xml.Name{Local: "True"}}
	case SimplePredicate:
		start = xml.StartElement{
			Name: xml.Name{Local: "SimplePredicate"},
			Attr: []xml.Attr{
				attr("field", p.Field),
				attr("operator", string(p.Operator)),
				attr("value", p.Value),
			},
		}
	default:
		return errors.Newf("unsupported predicate %T", p)
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// encodeNodes writes the subtree under root with an explicit stack so that
// skewed trees do not grow the goroutine stack with their height.
func encodeNodes(e *xml.Encoder, root *Node) error {
	type item struct {
		node  *Node
		close bool
	}
	end := xml.EndElement{Name: xml.Name{Local: "Node"}}
	stack := []item{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.close {
			if err := e.EncodeToken(end); err != nil {
				return err
			}
			continue
		}

		n := top.node
		start := xml.StartElement{Name: xml.Name{Local: "Node"}}
		if n.ID != "" {
			start.Attr = append(start.Attr, attr("id", n.ID))
		}
		if n.IsLeaf() {
			start.Attr = append(start.Attr, attr("score", n.Score))
		}
		start.Attr = append(start.Attr, attr("recordCount", FormatValue(n.RecordCount)))
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		if err := encodePredicate(e, n.Predicate); err != nil {
			return err
		}

		stack = append(stack, item{node: n, close: true})
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: n.Children[i]})
		}
	}
	return nil
}

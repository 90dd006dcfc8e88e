package builder

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// node is a generic element of an export document. Elements are matched by
// local name, so namespace prefixes used by the exporter do not matter.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Inner   string     `xml:",innerxml"`
	Nodes   []node     `xml:",any"`
}

func parseDocument(content string) (*node, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	dec.Entity = xml.HTMLEntity

	var root node
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return &root, nil
}

func (n *node) name() string {
	return n.XMLName.Local
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// walk visits the descendants of n in document order until visit returns
// false.
func (n *node) walk(visit func(*node) bool) bool {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if !visit(child) || !child.walk(visit) {
			return false
		}
	}
	return true
}

// find returns the first descendant named name.
func (n *node) find(name string) *node {
	var found *node
	n.walk(func(c *node) bool {
		if c.name() == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// findAll returns every descendant named name in document order.
func (n *node) findAll(name string) []*node {
	var found []*node
	n.walk(func(c *node) bool {
		if c.name() == name {
			found = append(found, c)
		}
		return true
	})
	return found
}

// text returns the trimmed text of the first descendant named name.
func (n *node) text(name string) (string, bool) {
	c := n.find(name)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.Text), true
}

// requiredText is text that fails when the element is absent.
func (n *node) requiredText(name string) (string, error) {
	value, ok := n.text(name)
	if !ok {
		return "", fmt.Errorf("%w: <%s> has no <%s>", ErrMalformedDocument, n.name(), name)
	}
	return value, nil
}

// number parses the text of the first descendant named name. An empty
// element counts as zero.
func (n *node) number(name string) (int64, error) {
	value, err := n.requiredText(name)
	if err != nil || value == "" {
		return 0, err
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> is not a number: %q", ErrMalformedDocument, name, value)
	}
	return parsed, nil
}

package vdom

import (
	"bytes"
	"fmt"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serialises the given nodes as an HTML fragment. Text and attribute
// values are escaped, so caller-supplied strings never become markup.
func RenderHTML(nodes ...*VNode) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := html.Render(&buf, toHTMLNode(n)); err != nil {
			return "", fmt.Errorf("render %s: %w", n.Tag, err)
		}
	}
	return buf.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: fmt.Sprint(n.Attributes[k])})
	}

	if n.Content != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child != nil {
			node.AppendChild(toHTMLNode(child))
		}
	}
	return node
}

package vdom

// TextTag marks a VNode that renders as a bare text node.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text rendered before the children
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// Text creates a bare text node.
func Text(text string) *VNode {
	return NewVNode(TextTag, nil, nil, text)
}

// Heading creates an <h3> VNode.
func Heading(text string) *VNode {
	return NewVNode("h3", nil, nil, text)
}

// Paragraph creates a <p> VNode with the given text and optional children.
func Paragraph(text string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("p", attrs, children, text)
}

// Strong creates a <strong> VNode.
func Strong(text string) *VNode {
	return NewVNode("strong", nil, nil, text)
}

// Rule creates an <hr> VNode.
func Rule() *VNode {
	return NewVNode("hr", nil, nil, "")
}

// Field renders "<p><strong>label</strong> value</p>", the row layout used by info panels.
func Field(label, value string) *VNode {
	return Paragraph("", nil, Strong(label), Text(" "+value))
}

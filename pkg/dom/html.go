package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment into detached nodes owned by doc.
// Whitespace-only text runs between elements are dropped; class attributes
// populate the node's class list. Shadow roots cannot be expressed in
// markup and are never produced.
func ParseFragment(doc *Document, markup string) ([]*Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}

	var nodes []*Node
	for _, parsedNode := range parsed {
		if converted := fromHTMLNode(doc, parsedNode); converted != nil {
			nodes = append(nodes, converted)
		}
	}
	return nodes, nil
}

// Render serializes the subtree rooted at n to HTML. A shadow root
// serializes as a declarative <template shadowrootmode="open"> child of its
// host, before the host's light children.
func Render(n *Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, toHTMLNode(n)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func fromHTMLNode(doc *Document, source *html.Node) *Node {
	switch source.Type {
	case html.TextNode:
		if strings.TrimSpace(source.Data) == "" {
			return nil
		}
		return doc.CreateTextNode(source.Data)
	case html.ElementNode:
		element := doc.CreateElement(source.Data)
		for _, attr := range source.Attr {
			if attr.Key == "class" {
				for _, class := range strings.Fields(attr.Val) {
					element.AddClass(class)
				}
				continue
			}
			element.SetAttribute(attr.Key, attr.Val)
		}
		for child := source.FirstChild; child != nil; child = child.NextSibling {
			if converted := fromHTMLNode(doc, child); converted != nil {
				element.appendChild(converted)
			}
		}
		return element
	default:
		return nil
	}
}

func toHTMLNode(n *Node) *html.Node {
	switch n.kind {
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.text}
	case ShadowRootNode:
		template := &html.Node{
			Type:     html.ElementNode,
			Data:     "template",
			DataAtom: atom.Template,
			Attr:     []html.Attribute{{Key: "shadowrootmode", Val: "open"}},
		}
		appendConvertedChildren(template, n)
		return template
	}

	converted := &html.Node{
		Type:     html.ElementNode,
		Data:     n.tag,
		DataAtom: atom.Lookup([]byte(n.tag)),
	}
	if len(n.classes) > 0 {
		converted.Attr = append(converted.Attr, html.Attribute{Key: "class", Val: n.ClassName()})
	}
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		converted.Attr = append(converted.Attr, html.Attribute{Key: name, Val: n.attrs[name]})
	}
	if n.shadow != nil {
		converted.AppendChild(toHTMLNode(n.shadow))
	}
	appendConvertedChildren(converted, n)
	return converted
}

func appendConvertedChildren(target *html.Node, n *Node) {
	for _, child := range n.children {
		target.AppendChild(toHTMLNode(child))
	}
}

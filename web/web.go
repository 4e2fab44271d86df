// Package web holds the static page the controller is built for.
package web

import (
	"bytes"
	_ "embed"
	"fmt"

	"golang.org/x/net/html"
)

//go:embed index.html
var IndexHTML []byte

// IDs returns the element ids declared in index.html, in document order.
func IDs() ([]string, error) {
	return idsOf(IndexHTML)
}

// Fragments returns the fragment targets of the in-page anchors in index.html.
func Fragments() ([]string, error) {
	root, err := html.Parse(bytes.NewReader(IndexHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse index.html: %w", err)
	}
	var out []string
	walk(root, func(n *html.Node) {
		if n.Data != "a" {
			return
		}
		if href := attr(n, "href"); len(href) > 1 && href[0] == '#' {
			out = append(out, href[1:])
		}
	})
	return out, nil
}

func idsOf(doc []byte) ([]string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse index.html: %w", err)
	}
	var ids []string
	walk(root, func(n *html.Node) {
		if id := attr(n, "id"); id != "" {
			ids = append(ids, id)
		}
	})
	return ids, nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Package htmlquote extracts the gold passbook quote from the Bank of Taiwan
// gold rate page.
//
// Tree traversal is split from extraction: Document and the ancestor helpers
// only navigate markup, so LocateRow and Extract can be exercised against
// hand-built trees as well as parsed pages.
package htmlquote

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed markup tree.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// FromNode wraps an already-built tree.
func FromNode(root *html.Node) *Document {
	return &Document{doc: goquery.NewDocumentFromNode(root)}
}

// FindFirstTextContaining returns the first text node, in document order,
// whose content contains marker.
func (d *Document) FindFirstTextContaining(marker string) *html.Node {
	for _, root := range d.doc.Nodes {
		if n := firstText(root, marker); n != nil {
			return n
		}
	}
	return nil
}

func firstText(n *html.Node, marker string) *html.Node {
	if n.Type == html.TextNode && strings.Contains(n.Data, marker) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstText(c, marker); found != nil {
			return found
		}
	}
	return nil
}

// Selection exposes the goquery view of the whole document.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

// NearestAncestorOfKind walks up from n and returns the first element whose
// tag is one of kinds. n itself is not considered.
func NearestAncestorOfKind(n *html.Node, kinds ...atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if isKind(p, kinds...) {
			return p
		}
	}
	return nil
}

func isKind(n *html.Node, kinds ...atom.Atom) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, k := range kinds {
		if n.DataAtom == k {
			return true
		}
	}
	return false
}

// LocateRow finds the table row that holds text. The text's own container is
// used when it is a row; otherwise the walk goes through the enclosing cell
// to its row, and finally to any enclosing row.
func LocateRow(text *html.Node) *html.Node {
	if text == nil {
		return nil
	}
	if isKind(text.Parent, atom.Tr) {
		return text.Parent
	}
	if cell := NearestAncestorOfKind(text, atom.Td, atom.Th); cell != nil {
		if row := NearestAncestorOfKind(cell, atom.Tr); row != nil {
			return row
		}
	}
	return NearestAncestorOfKind(text, atom.Tr)
}

// strippedText joins the trimmed text pieces under s.
func strippedText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		collectText(n, &b)
	}
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

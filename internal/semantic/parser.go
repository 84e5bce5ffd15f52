package semantic

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Parse converts raw filing HTML into an ordered sequence of semantic
// elements. Wrapper divs that only group other blocks are descended into;
// every other block-level node becomes one element.
func Parse(raw string) ([]*Element, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := findBody(doc)
	if root == nil {
		root = doc
	}

	var out []*Element
	var emit func(*html.Node)
	emit = func(n *html.Node) {
		if n.Type != html.ElementNode {
			if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
				out = append(out, classify(n))
			}
			return
		}
		switch n.Data {
		case "script", "style", "head", "title", "meta", "link":
			return
		}
		if isContainer(n) {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				emit(c)
			}
			return
		}
		out = append(out, classify(n))
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		emit(c)
	}
	return out, nil
}

// isContainer reports whether n is a grouping node whose children should be
// emitted individually rather than as one element.
func isContainer(n *html.Node) bool {
	switch n.Data {
	case "body", "section", "article", "main", "ul", "ol":
		return true
	case "div":
		blocks := 0
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && isBlockTag(c.Data) {
				blocks++
			}
		}
		return blocks >= 2
	}
	return false
}

func isBlockTag(tag string) bool {
	switch tag {
	case "p", "div", "table", "ul", "ol", "li", "hr", "blockquote",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func classify(n *html.Node) *Element {
	e := &Element{
		HTML: renderNode(n),
		Text: textContent(n),
	}

	if n.Type == html.TextNode {
		e.Kind = KindText
		return e
	}

	switch n.Data {
	case "table":
		e.Kind = KindTable
		return e
	case "img":
		e.Kind = KindImage
		return e
	case "hr":
		e.Kind = KindRootSectionSeparator
		return e
	case "li":
		e.Kind = KindBulletpoint
		return e
	}
	if level := headingLevel(n.Data); level > 0 {
		e.Kind = KindTitle
		e.Level = level
		return e
	}

	if e.Text == "" {
		if containsTag(n, "img") {
			e.Kind = KindImage
		} else {
			e.Kind = KindEmpty
		}
		return e
	}
	if isIrrelevantText(e.Text) {
		e.Kind = KindIrrelevant
		return e
	}
	if hasBulletPrefix(e.Text) {
		e.Kind = KindBulletpoint
		return e
	}
	if isFootnoteText(e.Text) {
		e.Kind = KindFootnote
		return e
	}
	if isBold(n) && len(e.Text) < 200 {
		if isRootSectionTitle(e.Text) {
			e.Kind = KindRootSection
			return e
		}
		e.Kind = KindTitle
		e.Level = styledTitleLevel(e.Text)
		return e
	}
	switch n.Data {
	case "p", "div", "span", "blockquote", "td", "font":
		e.Kind = KindText
	default:
		e.Kind = KindUndetermined
	}
	return e
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// isRootSectionTitle matches the report-part headers that open the top-level
// sections of a filing, e.g. "PART I" or "Item 2. Management's Discussion".
func isRootSectionTitle(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if strings.HasPrefix(t, "part ") && len(t) < 60 {
		return true
	}
	if strings.HasPrefix(t, "item ") {
		rest := strings.TrimPrefix(t, "item ")
		return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9'
	}
	return false
}

// styledTitleLevel ranks bold-styled titles: all-caps titles outrank
// mixed-case ones.
func styledTitleLevel(text string) int {
	if strings.ToUpper(text) == text {
		return 1
	}
	return 2
}

func isIrrelevantText(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "table of contents" || t == "index" {
		return true
	}
	digits := strings.TrimSpace(strings.TrimPrefix(t, "page"))
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var bulletPrefixes = []string{"•", "●", "◦", "·", "- ", "- "}

func hasBulletPrefix(text string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

// isFootnoteText matches "(1) ...", "(a) ..." and "* ..." markers.
func isFootnoteText(text string) bool {
	if strings.HasPrefix(text, "* ") {
		return true
	}
	if len(text) < 4 || text[0] != '(' {
		return false
	}
	end := strings.IndexByte(text, ')')
	if end <= 1 || end > 4 {
		return false
	}
	for _, r := range text[1:end] {
		if (r < '0' || r > '9') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return strings.HasPrefix(text[end+1:], " ")
}

// isBold reports whether n or a child wrapping all of its text carries bold
// styling, the way filings typeset their headings.
func isBold(n *html.Node) bool {
	switch n.Data {
	case "b", "strong":
		return true
	}
	for _, a := range n.Attr {
		if a.Key == "style" {
			s := strings.ReplaceAll(strings.ToLower(a.Val), " ", "")
			if strings.Contains(s, "font-weight:bold") || strings.Contains(s, "font-weight:700") {
				return true
			}
		}
	}
	// A single element child holding all the text, e.g. <p><b>Title</b></p>.
	var onlyChild *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return false
		}
		if c.Type == html.ElementNode {
			if onlyChild != nil {
				return false
			}
			onlyChild = c
		}
	}
	if onlyChild != nil {
		return isBold(onlyChild)
	}
	return false
}

func containsTag(n *html.Node, tag string) bool {
	if n.Type == html.ElementNode && n.Data == tag {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if containsTag(c, tag) {
			return true
		}
	}
	return false
}

func renderNode(n *html.Node) string {
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

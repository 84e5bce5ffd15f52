// Package htmlutil holds the display-side touch-ups applied to filing
// markup before it is rendered: inline XBRL removal, sanitization, source
// prettifying and markdown conversion.
package htmlutil

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripInlineXBRL removes ix:* (inline XBRL) tags from filing HTML while
// keeping their contents. Browsers don't know these tags and they break
// inline rendering of EDGAR documents.
func StripInlineXBRL(raw string) string {
	z := html.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	b.Grow(len(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if bytes.HasPrefix(name, []byte("ix:")) {
				continue
			}
		}
		b.Write(z.Raw())
	}
	return b.String()
}

// filingPolicy keeps the presentational markup filings rely on (tables,
// inline styles, font tags) while stripping scripts and event handlers.
var filingPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("font", "center", "ix")
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("width", "height", "align", "valign", "colspan", "rowspan",
		"cellpadding", "cellspacing", "border", "bgcolor").Globally()
	p.AllowDataURIImages()
	return p
}()

// Sanitize makes an untrusted filing fragment safe to render inline.
func Sanitize(raw string) string {
	return filingPolicy.Sanitize(raw)
}

// voidTags have no closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Prettify re-indents an HTML fragment for the source-code view.
func Prettify(raw string) string {
	nodes, err := html.ParseFragment(strings.NewReader(raw), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return raw
	}
	var b strings.Builder
	for _, n := range nodes {
		prettyNode(&b, n, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

func prettyNode(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case html.TextNode:
		t := strings.TrimSpace(n.Data)
		if t != "" {
			b.WriteString(indent)
			b.WriteString(html.EscapeString(t))
			b.WriteByte('\n')
		}
	case html.CommentNode:
		fmt.Fprintf(b, "%s<!--%s-->\n", indent, n.Data)
	case html.ElementNode:
		b.WriteString(indent)
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			fmt.Fprintf(b, " %s=%q", a.Key, html.EscapeString(a.Val))
		}
		b.WriteByte('>')
		b.WriteByte('\n')
		if voidTags[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			prettyNode(b, c, depth+1)
		}
		fmt.Fprintf(b, "%s</%s>\n", indent, n.Data)
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			prettyNode(b, c, depth)
		}
	}
}

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// ToMarkdown converts a filing fragment to Markdown for the markdown
// contents view.
func ToMarkdown(raw string) (string, error) {
	md, err := mdConverter.ConvertString(raw)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return md, nil
}

// CleanList splits free-form user input on the separator (or on newlines if
// sep is empty), trims whitespace, and drops empties and duplicates while
// retaining order.
func CleanList(input, sep string) []string {
	var parts []string
	if sep == "" {
		parts = strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	} else {
		parts = strings.Split(input, sep)
	}
	seen := make(map[string]bool, len(parts))
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

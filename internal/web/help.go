package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Help texts are authored as Markdown and rendered once at startup.
const (
	helpAPIKeyMD = "The API key is required for parsing files that haven't been pre-downloaded. " +
		"You can obtain a free one from [sec-api.io](https://sec-api.io)."

	helpAPIKeyWhyMD = "We're currently using *sec-api.io* to handle the removal of the " +
		"title 10-Q page and to download 10-Q Section HTML files. In the " +
		"future, we aim to download these HTML files directly from " +
		"SEC EDGAR. For now, you can get a free API key from " +
		"[sec-api.io](https://sec-api.io) and enter it here."

	helpAPIKeyEnvMD = "**Note:** a key entered here lives only for this browser session. " +
		"We suggest setting the `SECAPIO_API_KEY` environment variable instead, so the " +
		"key is available without manual entry each time."

	helpTickersMD = "Enter one or more ticker symbols, separated by commas. " +
		"The latest reports will be downloaded for the tickers you choose."

	helpSectionsMD = "MD&A stands for Management Discussion and Analysis. It's a section " +
		"of a company's report in which management discusses numerous aspects of the " +
		"company, such as market dynamics, operating results, risk factors, and more."

	helpElementsMD = "**Semantic Elements** correspond to the semantic elements in SEC EDGAR " +
		"documents. A semantic element refers to a meaningful unit within the document " +
		"that serves a specific purpose, such as a paragraph or a table. Unlike syntactic " +
		"elements, which structure the HTML, semantic elements carry vital information " +
		"for understanding the document's content."

	helpInterleaveMD = "When enabled, elements from multiple reports are displayed in an " +
		"interleaved manner for easier comparison. The first element from the first " +
		"report is followed by the first element from the second report, and so on."

	helpPageSizeMD = "Set the number of elements displayed per page. Use this to manage " +
		"the amount of information on the screen. Set to 0 to disable pagination and " +
		"show all elements at once."
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// helpTexts holds the rendered help snippets keyed for the template.
var helpTexts = map[string]template.HTML{
	"apiKey":     renderMarkdown(helpAPIKeyMD),
	"apiKeyWhy":  renderMarkdown(helpAPIKeyWhyMD),
	"apiKeyEnv":  renderMarkdown(helpAPIKeyEnvMD),
	"tickers":    renderMarkdown(helpTickersMD),
	"sections":   renderMarkdown(helpSectionsMD),
	"elements":   renderMarkdown(helpElementsMD),
	"interleave": renderMarkdown(helpInterleaveMD),
	"pageSize":   renderMarkdown(helpPageSizeMD),
}

package web

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/edgarlab/secviz/internal/filing"
	"github.com/edgarlab/secviz/internal/htmlutil"
	"github.com/edgarlab/secviz/internal/secapio"
	"github.com/edgarlab/secviz/internal/semantic"
	"github.com/edgarlab/secviz/internal/view"
)

// View-model types consumed by the page template.

type StepVM struct {
	Num     int
	Title   string
	Caption string
	Active  bool
	URL     string
}

type LinkButton struct {
	Label string
	Href  string
}

// ReportPanel is one labeled report block: raw HTML at step 1, nested
// expanders at step 3's merged view.
type ReportPanel struct {
	Label   string
	Buttons []LinkButton
	Body    template.HTML
	Open    bool
	Nodes   []*PanelNode
}

// PanelNode is one expander of the merged tree view.
type PanelNode struct {
	Title    string
	Body     template.HTML
	Open     bool
	Children []*PanelNode
}

// Card is one element box at step 2.
type Card struct {
	Title string
	Body  template.HTML
	Open  bool
}

type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

type PageLink struct {
	Num     int
	URL     string
	Current bool
}

type PaginationVM struct {
	Page  int
	Pages int
	Total int
	Prev  string
	Next  string
	Links []PageLink
}

type ReportOption struct {
	Label    string
	URL      string
	Selected bool
}

// OutlineVM is one selectable node of the tree browser.
type OutlineVM struct {
	Title    string
	Icon     string
	Tag      string
	URL      string
	Selected bool
	Open     bool
	Children []*OutlineVM
}

type BrowserVM struct {
	Reports      []ReportOption
	Buttons      []LinkButton
	Outline      []*OutlineVM
	Viewer       template.HTML
	HasSelection bool
}

// PageData is everything the page template renders from.
type PageData struct {
	State State

	Steps   []StepVM
	Welcome bool

	ShowKeyForm bool
	ReturnURL   string

	Error string
	Info  string

	ShowViewOptions bool
	ShowInterleave  bool
	ShowColumns     bool
	FilterOptions   []FilterOption

	TickersValue  string
	URLsValue     string
	PageSizeValue int
	ColumnsValue  int

	Panels     []ReportPanel
	Columns    [][]Card
	Pagination *PaginationVM
	Browser    *BrowserVM

	Help map[string]template.HTML
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st := DecodeState(r.URL.Query(), s.cfg)
	if st.Step > len(s.steps) {
		st.Step = 1
	}

	key, fromEnv := s.apiKey(r)

	data := &PageData{
		State:       st,
		ShowKeyForm: !fromEnv,
		ReturnURL:   st.URL(),
		Welcome:     st.Step == filing.StepOriginal,
		Help:        helpTexts,
	}
	for i, step := range s.steps {
		data.Steps = append(data.Steps, StepVM{
			Num:     i + 1,
			Title:   step.Title,
			Caption: step.Caption,
			Active:  st.Step == i+1,
			URL:     st.WithStep(i + 1).URL(),
		})
	}
	data.TickersValue = strings.Join(st.Tickers, ",")
	data.URLsValue = strings.Join(st.URLs, "\n")

	var tickers, urls []string
	if st.Source == SourceTickers {
		tickers = st.Tickers
	} else {
		urls = st.URLs
	}
	if len(tickers) == 0 && len(urls) == 0 {
		if st.Source == SourceTickers {
			data.Info = "Please select or enter at least one ticker."
		} else {
			data.Info = "Please enter at least one URL."
		}
		s.render(w, data)
		return
	}

	var sections []string
	if !st.AllSections {
		sections = []string{"part1item2"}
	}

	reports, err := s.loader.Load(r.Context(), filing.Request{
		APIKey:   key,
		FormType: s.cfg.FormType,
		Tickers:  tickers,
		URLs:     urls,
		Sections: sections,
	})
	if err != nil {
		switch {
		case errors.Is(err, secapio.ErrAPIKeyNotSet):
			data.Error = "API key not set. Please provide a valid API key."
		case errors.Is(err, secapio.ErrAPIKeyInvalid):
			data.Error = "Invalid API key. Please check your API key and try again."
		default:
			data.Error = err.Error()
		}
		s.render(w, data)
		return
	}

	if st.Step >= filing.StepParsed {
		for _, rep := range reports {
			rep.Elements, err = semantic.Parse(rep.HTML)
			if err != nil {
				data.Error = err.Error()
				s.render(w, data)
				return
			}
		}
		s.buildFilter(data, reports, &st)
	}
	if st.Step >= filing.StepStructured {
		for _, rep := range reports {
			rep.Tree = semantic.BuildTree(rep.Elements)
		}
	}

	switch {
	case st.Step == filing.StepOriginal:
		s.buildOriginalPanels(data, reports)
	case st.Step == filing.StepParsed:
		s.buildElementCards(data, reports, st)
	case st.Step == filing.StepStructured && st.MergedView:
		s.buildMergedPanels(data, reports, st)
	case st.Step == filing.StepStructured:
		s.buildTreeBrowser(data, reports, st)
	default:
		data.Info = "This step has no built-in view."
	}

	s.render(w, data)
}

// buildFilter computes the element-type filter control and applies the
// selection to every report's element list.
func (s *Server) buildFilter(data *PageData, reports []*filing.Report, st *State) {
	counts := view.CountKinds(reports)
	kinds := st.Kinds
	if !st.KindsSet {
		kinds = view.DefaultKinds(counts)
	}
	selected := make(map[semantic.Kind]bool, len(kinds))
	for _, k := range kinds {
		selected[k] = true
	}
	for _, kc := range counts {
		data.FilterOptions = append(data.FilterOptions, FilterOption{
			Value:    kc.Kind.String(),
			Label:    kc.Label(),
			Selected: selected[kc.Kind],
		})
	}
	for _, rep := range reports {
		rep.Elements = view.FilterElements(rep.Elements, kinds)
	}
	data.ShowViewOptions = st.Step == filing.StepParsed || st.Step == filing.StepStructured
	data.ShowInterleave = st.Step == filing.StepParsed && len(reports) >= 2
	data.ShowColumns = st.Step == filing.StepParsed
	data.ColumnsValue = columnCount(*st, len(reports))
}

func (s *Server) buildOriginalPanels(data *PageData, reports []*filing.Report) {
	for _, rep := range reports {
		data.Panels = append(data.Panels, ReportPanel{
			Label:   filing.Label(rep.Meta, rep.URL),
			Buttons: reportButtons(rep),
			Body:    template.HTML(htmlutil.Sanitize(htmlutil.StripInlineXBRL(rep.HTML))),
			Open:    true,
		})
	}
}

func (s *Server) buildElementCards(data *PageData, reports []*filing.Report, st State) {
	tags := filing.SourceTags(reports)
	perReport := make([][]Card, len(reports))
	for i, rep := range reports {
		for _, e := range rep.Elements {
			title := e.Kind.DisplayName()
			if tags[i] != "" {
				title += " | " + tags[i]
			}
			perReport[i] = append(perReport[i], Card{
				Title: title,
				Body:  renderElement(e, st.Contents),
				Open:  st.ExpandAll,
			})
		}
	}

	var cards []Card
	if st.Interleave {
		cards = view.Interleave(perReport)
	} else {
		for _, list := range perReport {
			cards = append(cards, list...)
		}
	}

	pageSize := st.PageSize
	if !st.PageSizeSet {
		pageSize = 0
		if len(cards) > s.cfg.DefaultPageSize {
			pageSize = s.cfg.DefaultPageSize
		}
	}
	data.PageSizeValue = pageSize

	page := view.Paginate(cards, st.PageNum, pageSize)
	if pageSize > 0 {
		pg := &PaginationVM{Page: page.Page, Pages: page.Pages, Total: page.Total}
		for n := 1; n <= page.Pages; n++ {
			pg.Links = append(pg.Links, PageLink{
				Num:     n,
				URL:     st.WithPage(n).URL(),
				Current: n == page.Page,
			})
		}
		if page.Page > 1 {
			pg.Prev = st.WithPage(page.Page - 1).URL()
		}
		if page.Page < page.Pages {
			pg.Next = st.WithPage(page.Page + 1).URL()
		}
		data.Pagination = pg
	}

	data.Columns = view.SplitColumns(page.Items, columnCount(st, len(reports)))
}

func (s *Server) buildMergedPanels(data *PageData, reports []*filing.Report, st State) {
	for _, rep := range reports {
		panel := ReportPanel{
			Label:   filing.Label(rep.Meta, rep.URL),
			Buttons: reportButtons(rep),
			Open:    st.ExpandDepth >= 0 || len(reports) == 1,
		}
		for _, root := range rep.Tree.RootNodes {
			panel.Nodes = append(panel.Nodes, buildPanelNode(root, 0, st))
		}
		data.Panels = append(data.Panels, panel)
	}
}

func buildPanelNode(n *semantic.TreeNode, depth int, st State) *PanelNode {
	node := &PanelNode{
		Title: n.Element.Kind.DisplayName(),
		Body:  renderElement(n.Element, st.Contents),
		Open:  st.ExpandDepth > depth,
	}
	for _, child := range n.Children {
		node.Children = append(node.Children, buildPanelNode(child, depth+1, st))
	}
	return node
}

func (s *Server) buildTreeBrowser(data *PageData, reports []*filing.Report, st State) {
	if st.Report >= len(reports) {
		st.Report = 0
	}
	browser := &BrowserVM{}
	for i, rep := range reports {
		sel := st.WithNode(i, -1)
		browser.Reports = append(browser.Reports, ReportOption{
			Label:    filing.Label(rep.Meta, rep.URL),
			URL:      sel.URL(),
			Selected: i == st.Report,
		})
	}

	rep := reports[st.Report]
	browser.Buttons = reportButtons(rep)

	outline := view.TreeOutline(rep.Tree, st.TagMode)
	var convert func(*view.OutlineNode) *OutlineVM
	convert = func(n *view.OutlineNode) *OutlineVM {
		vm := &OutlineVM{
			Title:    n.Title,
			Icon:     n.Icon,
			Tag:      n.Tag,
			URL:      st.WithNode(st.Report, n.Index).URL(),
			Selected: n.Index == st.Node,
			Open:     st.ExpandAll || containsIndex(n, st.Node),
		}
		for _, child := range n.Children {
			vm.Children = append(vm.Children, convert(child))
		}
		return vm
	}
	for _, root := range outline {
		browser.Outline = append(browser.Outline, convert(root))
	}

	if st.Node >= 0 && st.Node < len(rep.Elements) {
		browser.Viewer = renderElement(rep.Elements[st.Node], st.Contents)
		browser.HasSelection = true
	}
	data.Browser = browser
}

// containsIndex reports whether the selected node sits below n, so its
// ancestors render open even without expand-all.
func containsIndex(n *view.OutlineNode, index int) bool {
	if index < 0 {
		return false
	}
	if n.Index == index {
		return true
	}
	for _, child := range n.Children {
		if containsIndex(child, index) {
			return true
		}
	}
	return false
}

// renderElement produces the element body for the selected contents mode.
func renderElement(e *semantic.Element, mode ContentsMode) template.HTML {
	switch mode {
	case ContentsCode:
		return template.HTML("<pre><code>" +
			template.HTMLEscapeString(htmlutil.Prettify(e.HTML)) + "</code></pre>")
	case ContentsMarkdown:
		md, err := htmlutil.ToMarkdown(e.HTML)
		if err != nil {
			md = htmlutil.Prettify(e.HTML)
		}
		return template.HTML("<pre><code>" + template.HTMLEscapeString(md) + "</code></pre>")
	default:
		return template.HTML(htmlutil.Sanitize(htmlutil.StripInlineXBRL(e.HTML)))
	}
}

func reportButtons(rep *filing.Report) []LinkButton {
	if rep.Meta == nil {
		return []LinkButton{{Label: "sec.gov", Href: rep.URL}}
	}
	return []LinkButton{
		{Label: "sec.gov", Href: rep.Meta.LinkToHTML},
		{Label: "Full HTML", Href: rep.Meta.LinkToFilingDetails},
	}
}

func columnCount(st State, reportCount int) int {
	if st.Columns > 0 {
		return st.Columns
	}
	if reportCount == 2 {
		return 2
	}
	return 1
}

func (s *Server) render(w http.ResponseWriter, data *PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Error("render page", "error", err)
	}
}


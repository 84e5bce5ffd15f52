package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/edgarlab/secviz/internal/config"
	"github.com/edgarlab/secviz/internal/htmlutil"
	"github.com/edgarlab/secviz/internal/semantic"
	"github.com/edgarlab/secviz/internal/view"
)

// Data source options.
const (
	SourceTickers = "tickers"
	SourceURLs    = "urls"
)

// ContentsMode selects how element markup is shown.
type ContentsMode string

const (
	ContentsRendered ContentsMode = "rendered"
	ContentsCode     ContentsMode = "code"
	ContentsMarkdown ContentsMode = "markdown"
)

// State is the complete view state of one page render, decoded from query
// parameters. Every interaction is a plain GET that carries the whole state,
// so each request recomputes the page from scratch.
type State struct {
	Source      string
	Tickers     []string
	URLs        []string
	AllSections bool

	Step int

	Kinds    []semantic.Kind
	KindsSet bool // distinguishes "nothing selected" from "use defaults"

	Contents   ContentsMode
	Columns    int // 0 = auto (2 when exactly two reports)
	Interleave bool
	ExpandAll  bool

	PageSize    int
	PageSizeSet bool
	PageNum     int

	MergedView  bool // step 3: merged expander view instead of the tree browser
	ExpandDepth int
	TagMode     view.TagMode

	Report int // selected report in the tree browser
	Node   int // selected outline node, -1 when none
}

// DecodeState reads the view state from query parameters, falling back to
// the configured defaults.
func DecodeState(q url.Values, cfg config.Config) State {
	st := State{
		Source:      SourceTickers,
		Step:        1,
		Contents:    ContentsRendered,
		PageNum:     1,
		ExpandDepth: -1,
		Node:        -1,
	}

	if q.Get("source") == SourceURLs {
		st.Source = SourceURLs
	}
	if q.Has("tickers") {
		st.Tickers = htmlutil.CleanList(q.Get("tickers"), ",")
	} else {
		st.Tickers = htmlutil.CleanList(cfg.DefaultTickers, ",")
	}
	st.URLs = htmlutil.CleanList(q.Get("urls"), "")
	st.AllSections = q.Get("sections") == "all"

	if n, err := strconv.Atoi(q.Get("step")); err == nil && n >= 1 {
		st.Step = n
	}

	if q.Has("kinds") {
		st.KindsSet = true
		for _, name := range htmlutil.CleanList(strings.Join(q["kinds"], ","), ",") {
			if k, ok := semantic.ParseKind(name); ok {
				st.Kinds = append(st.Kinds, k)
			}
		}
	}

	switch ContentsMode(q.Get("contents")) {
	case ContentsCode:
		st.Contents = ContentsCode
	case ContentsMarkdown:
		st.Contents = ContentsMarkdown
	}

	if n, err := strconv.Atoi(q.Get("cols")); err == nil && n >= 1 {
		st.Columns = n
	}
	st.Interleave = boolParam(q, "interleave")
	st.ExpandAll = boolParam(q, "expand")

	if q.Has("pagesize") {
		if n, err := strconv.Atoi(q.Get("pagesize")); err == nil && n >= 0 {
			st.PageSize = n
			st.PageSizeSet = true
		}
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 1 {
		st.PageNum = n
	}

	st.MergedView = q.Get("view") == "merged"
	if q.Has("depth") {
		if n, err := strconv.Atoi(q.Get("depth")); err == nil && n >= -1 {
			st.ExpandDepth = n
		}
	}
	if q.Get("tag") == "length" {
		st.TagMode = view.TagTextLength
	}

	if n, err := strconv.Atoi(q.Get("report")); err == nil && n >= 0 {
		st.Report = n
	}
	if n, err := strconv.Atoi(q.Get("node")); err == nil && n >= 0 {
		st.Node = n
	}

	return st
}

// boolParam treats any "1" value as true; checkbox inputs are paired with a
// hidden "0" input so the parameter is always present.
func boolParam(q url.Values, key string) bool {
	for _, v := range q[key] {
		if v == "1" {
			return true
		}
	}
	return false
}

// Values re-encodes the state as query parameters, the inverse of
// DecodeState. Used to build links that change one knob while keeping the
// rest of the state.
func (st State) Values() url.Values {
	q := url.Values{}
	q.Set("source", st.Source)
	q.Set("tickers", strings.Join(st.Tickers, ","))
	if len(st.URLs) > 0 {
		q.Set("urls", strings.Join(st.URLs, "\n"))
	}
	if st.AllSections {
		q.Set("sections", "all")
	} else {
		q.Set("sections", "mda")
	}
	q.Set("step", strconv.Itoa(st.Step))
	if st.KindsSet {
		names := make([]string, 0, len(st.Kinds))
		for _, k := range st.Kinds {
			names = append(names, k.String())
		}
		q.Set("kinds", strings.Join(names, ","))
	}
	q.Set("contents", string(st.Contents))
	if st.Columns > 0 {
		q.Set("cols", strconv.Itoa(st.Columns))
	}
	if st.Interleave {
		q.Set("interleave", "1")
	}
	if st.ExpandAll {
		q.Set("expand", "1")
	}
	if st.PageSizeSet {
		q.Set("pagesize", strconv.Itoa(st.PageSize))
	}
	if st.PageNum > 1 {
		q.Set("page", strconv.Itoa(st.PageNum))
	}
	if st.MergedView {
		q.Set("view", "merged")
	}
	if st.ExpandDepth != -1 {
		q.Set("depth", strconv.Itoa(st.ExpandDepth))
	}
	if st.TagMode == view.TagTextLength {
		q.Set("tag", "length")
	}
	if st.Report > 0 {
		q.Set("report", strconv.Itoa(st.Report))
	}
	if st.Node >= 0 {
		q.Set("node", strconv.Itoa(st.Node))
	}
	return q
}

// URL renders the state as a page URL.
func (st State) URL() string {
	return "/?" + st.Values().Encode()
}

// WithStep returns a copy pointing at another process step, with pagination
// and node selection reset.
func (st State) WithStep(step int) State {
	st.Step = step
	st.PageNum = 1
	st.Node = -1
	return st
}

// WithPage returns a copy pointing at another pagination window.
func (st State) WithPage(page int) State {
	st.PageNum = page
	return st
}

// WithNode returns a copy with another tree node selected.
func (st State) WithNode(report, node int) State {
	st.Report = report
	st.Node = node
	return st
}

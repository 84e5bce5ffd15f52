// Package filing defines the display-oriented records the inspector works
// with: filing metadata, per-report parse results, and the pipeline steps a
// user can browse.
package filing

import (
	"path"
	"strings"
	"time"

	"github.com/edgarlab/secviz/internal/semantic"
)

// Metadata mirrors the retrieval API's filing metadata JSON.
type Metadata struct {
	CompanyName         string `json:"companyName"`
	FormType            string `json:"formType"`
	FiledAt             string `json:"filedAt"`
	PeriodOfReport      string `json:"periodOfReport"`
	LinkToHTML          string `json:"linkToHtml"`
	LinkToFilingDetails string `json:"linkToFilingDetails"`
	Ticker              string `json:"ticker,omitempty"`
}

// Report is one parsed filing: the raw section HTML plus the parser's
// output for the steps the user asked for. Immutable for a render.
type Report struct {
	URL      string
	HTML     string
	Meta     *Metadata
	Elements []*semantic.Element
	Tree     *semantic.Tree
}

// ProcessStep is one pipeline stage the user may inspect.
type ProcessStep struct {
	Title   string
	Caption string
}

// The fixed step set. Step numbers shown to the user are 1-based.
const (
	StepOriginal   = 1
	StepParsed     = 2
	StepStructured = 3
)

// Steps returns the pipeline stages, with any caller-supplied extras
// appended after the fixed three.
func Steps(extra ...ProcessStep) []ProcessStep {
	steps := []ProcessStep{
		{Title: "Original", Caption: "From SEC EDGAR"},
		{Title: "Parsed", Caption: "Semantic Elements"},
		{Title: "Structured", Caption: "Semantic Tree"},
	}
	return append(steps, extra...)
}

const displayDate = "Jan 02, 2006"

// FiledAtTime parses the filed-at timestamp (RFC 3339 with offset).
func (m *Metadata) FiledAtTime() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, m.FiledAt)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// PeriodTime parses the period-of-report date (date-only or RFC 3339).
func (m *Metadata) PeriodTime() (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, m.PeriodOfReport); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Company returns the normalized company name.
func (m *Metadata) Company() string {
	return NormalizeCompanyName(m.CompanyName)
}

// Label returns the heading shown for a report: company, form type and the
// two dates when metadata is present, otherwise the last URL path segment.
func Label(meta *Metadata, url string) string {
	if meta == nil {
		return path.Base(url)
	}
	var b strings.Builder
	b.WriteString(meta.Company())
	b.WriteString(" | ")
	b.WriteString(meta.FormType)
	if t, ok := meta.FiledAtTime(); ok {
		b.WriteString(" filed on ")
		b.WriteString(t.Format(displayDate))
	}
	if t, ok := meta.PeriodTime(); ok {
		b.WriteString(" for the period ended ")
		b.WriteString(t.Format(displayDate))
	}
	return b.String()
}

// SourceTags labels each report for mixed views. Single-report renders get
// empty tags; companies appearing more than once are disambiguated by their
// period-of-report date.
func SourceTags(reports []*Report) []string {
	tags := make([]string, len(reports))
	if len(reports) < 2 {
		return tags
	}
	companies := make(map[string]int)
	for _, r := range reports {
		if r.Meta != nil {
			companies[r.Meta.Company()]++
		}
	}
	for i, r := range reports {
		if r.Meta == nil {
			tags[i] = path.Base(r.URL)
			continue
		}
		company := r.Meta.Company()
		if companies[company] > 1 {
			if t, ok := r.Meta.PeriodTime(); ok {
				tags[i] = company + " " + t.Format("2006-01-02")
				continue
			}
		}
		tags[i] = company
	}
	return tags
}

// NormalizeCompanyName cleans up EDGAR-style company names: collapses
// whitespace, strips trailing state-of-incorporation markers like "/DE/",
// and title-cases names filed in all caps.
func NormalizeCompanyName(name string) string {
	fields := strings.Fields(name)
	// Trailing "/DE/" or "\DE\" markers.
	for len(fields) > 0 {
		last := fields[len(fields)-1]
		if strings.HasPrefix(last, "/") || strings.HasPrefix(last, "\\") {
			fields = fields[:len(fields)-1]
			continue
		}
		break
	}
	name = strings.Join(fields, " ")
	if name != "" && name == strings.ToUpper(name) {
		name = titleCase(name)
	}
	return name
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}

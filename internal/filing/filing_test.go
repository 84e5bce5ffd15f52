package filing

import (
	"testing"
)

func TestLabel_WithMetadata(t *testing.T) {
	meta := &Metadata{
		CompanyName:    "Apple Inc.",
		FormType:       "10-Q",
		FiledAt:        "2023-08-04T18:04:43-04:00",
		PeriodOfReport: "2023-07-01",
	}
	got := Label(meta, "https://example.com/aapl-20230701.htm")
	want := "Apple Inc. | 10-Q filed on Aug 04, 2023 for the period ended Jul 01, 2023"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLabel_FiledAtConvertsToUTC(t *testing.T) {
	meta := &Metadata{
		CompanyName: "Apple Inc.",
		FormType:    "10-Q",
		// 23:30 on Aug 4 in UTC-2 is Aug 5 in UTC.
		FiledAt: "2023-08-04T23:30:00-02:00",
	}
	got := Label(meta, "")
	want := "Apple Inc. | 10-Q filed on Aug 05, 2023"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLabel_WithoutMetadata(t *testing.T) {
	got := Label(nil, "https://www.sec.gov/Archives/edgar/data/320193/aapl-20230701.htm")
	if got != "aapl-20230701.htm" {
		t.Errorf("expected URL basename, got %q", got)
	}
}

func TestNormalizeCompanyName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Apple Inc.", "Apple Inc."},
		{"APPLE INC", "Apple Inc"},
		{"  Alphabet   Inc. ", "Alphabet Inc."},
		{"JOHNSON & JOHNSON /NJ/", "Johnson & Johnson"},
	}
	for _, tc := range cases {
		if got := NormalizeCompanyName(tc.input); got != tc.want {
			t.Errorf("NormalizeCompanyName(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestSourceTags_SingleReportHasNoTag(t *testing.T) {
	reports := []*Report{
		{URL: "https://example.com/a.htm", Meta: &Metadata{CompanyName: "Apple Inc."}},
	}
	tags := SourceTags(reports)
	if tags[0] != "" {
		t.Errorf("expected empty tag for single report, got %q", tags[0])
	}
}

func TestSourceTags_DisambiguatesSameCompany(t *testing.T) {
	reports := []*Report{
		{Meta: &Metadata{CompanyName: "Apple Inc.", PeriodOfReport: "2023-07-01"}},
		{Meta: &Metadata{CompanyName: "Apple Inc.", PeriodOfReport: "2023-04-01"}},
		{Meta: &Metadata{CompanyName: "Alphabet Inc."}},
		{URL: "https://example.com/filing.htm"},
	}
	tags := SourceTags(reports)
	want := []string{"Apple Inc. 2023-07-01", "Apple Inc. 2023-04-01", "Alphabet Inc.", "filing.htm"}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag[%d]: expected %q, got %q", i, want[i], tags[i])
		}
	}
}

func TestSteps_FixedSetPlusExtras(t *testing.T) {
	steps := Steps()
	if len(steps) != 3 {
		t.Fatalf("expected 3 fixed steps, got %d", len(steps))
	}
	if steps[0].Title != "Original" || steps[1].Title != "Parsed" || steps[2].Title != "Structured" {
		t.Errorf("unexpected step titles: %+v", steps)
	}

	extra := ProcessStep{Title: "Value Added", Caption: "AI Applications"}
	steps = Steps(extra)
	if len(steps) != 4 || steps[3].Title != "Value Added" {
		t.Errorf("expected extra step appended, got %+v", steps)
	}
}

func TestMetadata_PeriodTimeLayouts(t *testing.T) {
	for _, v := range []string{"2023-07-01", "2023-07-01T00:00:00-04:00"} {
		m := &Metadata{PeriodOfReport: v}
		if _, ok := m.PeriodTime(); !ok {
			t.Errorf("expected %q to parse", v)
		}
	}
	m := &Metadata{PeriodOfReport: "bogus"}
	if _, ok := m.PeriodTime(); ok {
		t.Error("expected parse failure for bogus date")
	}
}

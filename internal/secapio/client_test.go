package secapio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/edgarlab/secviz/internal/filing"
)

func TestMetadata_KeyNotSet(t *testing.T) {
	c := NewClient("http://unused.example.com", time.Second)
	_, err := c.Metadata(context.Background(), filing.MetadataRequest{Ticker: "AAPL"})
	if !errors.Is(err, ErrAPIKeyNotSet) {
		t.Fatalf("expected ErrAPIKeyNotSet, got %v", err)
	}
}

func TestDownloadHTML_KeyNotSet(t *testing.T) {
	c := NewClient("http://unused.example.com", time.Second)
	_, err := c.DownloadHTML(context.Background(), filing.DownloadRequest{URL: "https://x"})
	if !errors.Is(err, ErrAPIKeyNotSet) {
		t.Fatalf("expected ErrAPIKeyNotSet, got %v", err)
	}
}

func TestMetadata_InvalidKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Metadata(context.Background(), filing.MetadataRequest{APIKey: "bad", Ticker: "AAPL"})
	if !errors.Is(err, ErrAPIKeyInvalid) {
		t.Fatalf("expected ErrAPIKeyInvalid, got %v", err)
	}
}

func TestMetadata_ByTicker(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "key123" {
			t.Errorf("expected api key in Authorization header, got %q", auth)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"filings": []map[string]any{{
				"companyName":         "Apple Inc.",
				"formType":            "10-Q",
				"filedAt":             "2023-08-04T18:04:43-04:00",
				"periodOfReport":      "2023-07-01",
				"linkToFilingDetails": "https://www.sec.gov/aapl.htm",
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	meta, err := c.Metadata(context.Background(), filing.MetadataRequest{
		APIKey:   "key123",
		FormType: "10-Q",
		Ticker:   "AAPL",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.CompanyName != "Apple Inc." {
		t.Errorf("expected company name decoded, got %q", meta.CompanyName)
	}
	if meta.LinkToFilingDetails != "https://www.sec.gov/aapl.htm" {
		t.Errorf("expected filing link decoded, got %q", meta.LinkToFilingDetails)
	}

	q, _ := gotBody["query"].(string)
	if !strings.Contains(q, `formType:"10-Q"`) || !strings.Contains(q, "ticker:AAPL") {
		t.Errorf("unexpected query %q", q)
	}
}

func TestMetadata_NoFilingFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"filings": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Metadata(context.Background(), filing.MetadataRequest{
		APIKey: "k", FormType: "10-Q", Ticker: "ZZZZ",
	})
	if err == nil || !strings.Contains(err.Error(), "no 10-Q filing found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDownloadHTML_ConcatenatesSections(t *testing.T) {
	var items []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extractor" {
			t.Errorf("expected /extractor path, got %q", r.URL.Path)
		}
		if token := r.URL.Query().Get("token"); token != "k" {
			t.Errorf("expected token param, got %q", token)
		}
		item := r.URL.Query().Get("item")
		items = append(items, item)
		if item == "part2item1" {
			w.Write([]byte("  ")) // empty sections are skipped
			return
		}
		w.Write([]byte("<p>" + item + "</p>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	html, err := c.DownloadHTML(context.Background(), filing.DownloadRequest{
		APIKey:   "k",
		URL:      "https://www.sec.gov/aapl.htm",
		Sections: []string{"part1item2", "part2item1", "part2item1a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p>part1item2</p>\n<p>part2item1a</p>" {
		t.Errorf("unexpected html %q", html)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 extractor calls, got %v", items)
	}
}

func TestDownloadHTML_NilSectionsFetchesAll(t *testing.T) {
	count := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count++
		w.Write([]byte("<p>x</p>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.DownloadHTML(context.Background(), filing.DownloadRequest{
		APIKey: "k",
		URL:    "https://www.sec.gov/aapl.htm",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != len(tenQSections) {
		t.Errorf("expected %d section fetches, got %d", len(tenQSections), count)
	}
}

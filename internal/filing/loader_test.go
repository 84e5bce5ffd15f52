package filing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

type fakeRetriever struct {
	metaErr     error
	downloadErr error
	calls       []string
}

func (f *fakeRetriever) Metadata(ctx context.Context, req MetadataRequest) (*Metadata, error) {
	f.calls = append(f.calls, "meta:"+req.Ticker+req.URL)
	if f.metaErr != nil {
		return nil, f.metaErr
	}
	name := req.Ticker
	if name == "" {
		name = "From URL"
	}
	return &Metadata{
		CompanyName:         name,
		FormType:            req.FormType,
		LinkToFilingDetails: "https://filings.example.com/" + req.Ticker + ".htm",
	}, nil
}

func (f *fakeRetriever) DownloadHTML(ctx context.Context, req DownloadRequest) (string, error) {
	f.calls = append(f.calls, "download:"+req.URL)
	if f.downloadErr != nil {
		return "", f.downloadErr
	}
	return "<html><body><p>" + req.URL + "</p></body></html>", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoader_TickersThenURLs(t *testing.T) {
	f := &fakeRetriever{}
	l := NewLoader(f, testLogger())

	reports, err := l.Load(context.Background(), Request{
		APIKey:   "k",
		FormType: "10-Q",
		Tickers:  []string{"AAPL", "GOOG"},
		URLs:     []string{"https://example.com/x.htm"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	if reports[0].Meta.CompanyName != "AAPL" || reports[1].Meta.CompanyName != "GOOG" {
		t.Errorf("expected ticker order preserved, got %q then %q",
			reports[0].Meta.CompanyName, reports[1].Meta.CompanyName)
	}
	if reports[2].URL != "https://example.com/x.htm" {
		t.Errorf("expected URL report last, got %q", reports[2].URL)
	}
	for i, r := range reports {
		if r.HTML == "" {
			t.Errorf("report[%d]: expected HTML", i)
		}
	}
}

func TestLoader_TickerURLComesFromMetadata(t *testing.T) {
	f := &fakeRetriever{}
	l := NewLoader(f, testLogger())

	reports, err := l.Load(context.Background(), Request{
		APIKey:  "k",
		Tickers: []string{"AAPL"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports[0].URL != "https://filings.example.com/AAPL.htm" {
		t.Errorf("expected filing details link as report URL, got %q", reports[0].URL)
	}
}

func TestLoader_DownloadErrorPropagates(t *testing.T) {
	sentinel := errors.New("boom")
	f := &fakeRetriever{downloadErr: sentinel}
	l := NewLoader(f, testLogger())

	_, err := l.Load(context.Background(), Request{APIKey: "k", Tickers: []string{"AAPL"}})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got %v", err)
	}
}

func TestLoader_MetadataFailureForURLIsTolerated(t *testing.T) {
	f := &fakeRetriever{metaErr: fmt.Errorf("no metadata")}
	l := NewLoader(f, testLogger())

	reports, err := l.Load(context.Background(), Request{
		APIKey: "k",
		URLs:   []string{"https://example.com/x.htm"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports[0].Meta != nil {
		t.Errorf("expected nil metadata, got %+v", reports[0].Meta)
	}
}

package filing

import (
	"context"
	"fmt"
	"log/slog"
)

// MetadataRequest asks the retrieval service for filing metadata, either for
// the latest filing of a ticker or for an exact filing URL.
type MetadataRequest struct {
	APIKey   string
	FormType string
	Ticker   string
	URL      string
}

// DownloadRequest asks the retrieval service for a filing's section HTML.
// Nil Sections means every section of the form type.
type DownloadRequest struct {
	APIKey   string
	FormType string
	URL      string
	Sections []string
	Ticker   string
}

// Retriever is the external document-retrieval API.
type Retriever interface {
	Metadata(ctx context.Context, req MetadataRequest) (*Metadata, error)
	DownloadHTML(ctx context.Context, req DownloadRequest) (string, error)
}

// Request names the reports to load for one render: the latest filings of
// the given tickers plus the explicitly listed filing URLs.
type Request struct {
	APIKey   string
	FormType string
	Tickers  []string
	URLs     []string
	Sections []string
}

// Loader resolves a Request into Reports via the retrieval service.
type Loader struct {
	retriever Retriever
	log       *slog.Logger
}

func NewLoader(retriever Retriever, log *slog.Logger) *Loader {
	return &Loader{retriever: retriever, log: log}
}

// Load fetches metadata and section HTML for every requested report,
// tickers first, in input order. Retrieval errors (including the credential
// sentinels) are returned unchanged for the caller to surface.
func (l *Loader) Load(ctx context.Context, req Request) ([]*Report, error) {
	reports := make([]*Report, 0, len(req.Tickers)+len(req.URLs))

	for _, ticker := range req.Tickers {
		meta, err := l.retriever.Metadata(ctx, MetadataRequest{
			APIKey:   req.APIKey,
			FormType: req.FormType,
			Ticker:   ticker,
		})
		if err != nil {
			return nil, fmt.Errorf("metadata for %s: %w", ticker, err)
		}
		url := meta.LinkToFilingDetails
		html, err := l.retriever.DownloadHTML(ctx, DownloadRequest{
			APIKey:   req.APIKey,
			FormType: req.FormType,
			URL:      url,
			Sections: req.Sections,
			Ticker:   ticker,
		})
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", ticker, err)
		}
		l.log.Info("loaded filing", "ticker", ticker, "url", url, "bytes", len(html))
		reports = append(reports, &Report{URL: url, HTML: html, Meta: meta})
	}

	for _, url := range req.URLs {
		html, err := l.retriever.DownloadHTML(ctx, DownloadRequest{
			APIKey:   req.APIKey,
			FormType: req.FormType,
			URL:      url,
			Sections: req.Sections,
		})
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", url, err)
		}
		meta, err := l.retriever.Metadata(ctx, MetadataRequest{
			APIKey:   req.APIKey,
			FormType: req.FormType,
			URL:      url,
		})
		if err != nil {
			// The document itself loaded; labels fall back to the URL.
			l.log.Warn("metadata lookup failed", "url", url, "error", err)
			meta = nil
		}
		l.log.Info("loaded filing", "url", url, "bytes", len(html))
		reports = append(reports, &Report{URL: url, HTML: html, Meta: meta})
	}

	return reports, nil
}

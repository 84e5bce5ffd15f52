// Package secapio talks to the sec-api.io retrieval service: filing
// metadata lookups and section HTML extraction. Parsing happens elsewhere;
// this is only the transport.
package secapio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/edgarlab/secviz/internal/filing"
)

// APIKeyEnvVar is the environment variable the key is read from.
const APIKeyEnvVar = "SECAPIO_API_KEY"

// Credential failures are surfaced inline by the UI instead of crashing the
// render.
var (
	ErrAPIKeyNotSet  = errors.New("secapio: api key not set")
	ErrAPIKeyInvalid = errors.New("secapio: api key invalid")
)

// tenQSections lists the extractor items of a 10-Q in filing order.
var tenQSections = []string{
	"part1item1", "part1item2", "part1item3", "part1item4",
	"part2item1", "part2item1a", "part2item2", "part2item3",
	"part2item4", "part2item5", "part2item6",
}

// Client communicates with the sec-api.io HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// query is the body of a filing-search request.
type query struct {
	Query string `json:"query"`
	From  string `json:"from"`
	Size  string `json:"size"`
	Sort  []any  `json:"sort"`
}

type queryResponse struct {
	Filings []*filing.Metadata `json:"filings"`
}

// Metadata looks up filing metadata, either the latest filing of the given
// form type for a ticker, or the filing at an exact URL.
func (c *Client) Metadata(ctx context.Context, req filing.MetadataRequest) (*filing.Metadata, error) {
	if req.APIKey == "" {
		return nil, ErrAPIKeyNotSet
	}

	var q string
	switch {
	case req.Ticker != "":
		q = fmt.Sprintf("formType:%q AND ticker:%s", req.FormType, req.Ticker)
	case req.URL != "":
		q = fmt.Sprintf("linkToFilingDetails:%q", req.URL)
	default:
		return nil, fmt.Errorf("metadata request needs a ticker or a url")
	}

	body, err := json.Marshal(query{
		Query: q,
		From:  "0",
		Size:  "1",
		Sort:  []any{map[string]any{"filedAt": map[string]string{"order": "desc"}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", req.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("query filings: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "query filings"); err != nil {
		return nil, err
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode filings: %w", err)
	}
	if len(result.Filings) == 0 {
		return nil, fmt.Errorf("no %s filing found for %s", req.FormType, firstNonEmpty(req.Ticker, req.URL))
	}
	return result.Filings[0], nil
}

// DownloadHTML fetches the extracted section HTML for a filing. Nil
// Sections means every section of the form type, concatenated in filing
// order.
func (c *Client) DownloadHTML(ctx context.Context, req filing.DownloadRequest) (string, error) {
	if req.APIKey == "" {
		return "", ErrAPIKeyNotSet
	}

	sections := req.Sections
	if sections == nil {
		sections = tenQSections
	}

	var b strings.Builder
	for _, section := range sections {
		part, err := c.extract(ctx, req.APIKey, req.URL, section)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(part) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(part)
	}
	return b.String(), nil
}

func (c *Client) extract(ctx context.Context, apiKey, filingURL, section string) (string, error) {
	u := fmt.Sprintf("%s/extractor?url=%s&item=%s&type=html&token=%s",
		c.baseURL, url.QueryEscape(filingURL), url.QueryEscape(section), url.QueryEscape(apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", section, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "extract "+section); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return "", fmt.Errorf("read section %s: %w", section, err)
	}
	return string(body), nil
}

func checkStatus(resp *http.Response, op string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAPIKeyInvalid
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, string(respBody))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
)

// Client wraps go-elasticsearch and returns response bodies as text.
type Client struct {
	es       *elasticsearch.Client
	log      *slog.Logger
	opaqueID string
}

// RequestError reports a response with a non-success status. Body is the
// engine's response, unmodified.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %s: %s", e.Status, e.Body)
}

// New instantiates the Elasticsearch client. Every request made through it
// carries the same X-Opaque-Id so one invocation can be traced in cluster logs.
func New(addr, apiKey string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	log := logger.With("opaque_id", id)

	cfg := elasticsearch.Config{
		Addresses:    []string{addr},
		APIKey:       apiKey,
		DisableRetry: true,
		Transport: &loggingTransport{
			next: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				ResponseHeaderTimeout: timeout,
			},
			log: log,
		},
	}

	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	return &Client{es: es, log: log, opaqueID: id}, nil
}

type loggingTransport struct {
	next http.RoundTripper
	log  *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := t.next.RoundTrip(req)
	if err != nil {
		t.log.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("err", err),
		)
		return nil, err
	}
	t.log.Debug("request completed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", res.StatusCode),
		slog.Duration("took", time.Since(start)),
	)
	return res, nil
}

// OpaqueID returns the X-Opaque-Id sent with every request.
func (c *Client) OpaqueID() string {
	return c.opaqueID
}

func (c *Client) header() http.Header {
	return http.Header{"X-Opaque-Id": []string{c.opaqueID}}
}

// ListIndices returns _cat/indices as JSON, sorted by index name.
func (c *Client) ListIndices(ctx context.Context) (string, error) {
	return c.do(ctx, "list indices", esapi.CatIndicesRequest{
		Format: "json",
		S:      []string{"index"},
		Header: c.header(),
	})
}

// Mapping returns the mapping of index.
func (c *Client) Mapping(ctx context.Context, index string) (string, error) {
	return c.do(ctx, "get mapping", esapi.IndicesGetMappingRequest{
		Index:  []string{index},
		Header: c.header(),
	})
}

// Search posts body to index/_search.
func (c *Client) Search(ctx context.Context, index string, body []byte) (string, error) {
	return c.do(ctx, "search", esapi.SearchRequest{
		Index:  []string{index},
		Body:   bytes.NewReader(body),
		Header: c.header(),
	})
}

// Count posts body to index/_count.
func (c *Client) Count(ctx context.Context, index string, body []byte) (string, error) {
	return c.do(ctx, "count", esapi.CountRequest{
		Index:  []string{index},
		Body:   bytes.NewReader(body),
		Header: c.header(),
	})
}

// ESQL runs an ES|QL query and returns the columnar JSON result.
func (c *Client) ESQL(ctx context.Context, query string) (string, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return "", fmt.Errorf("marshal esql body: %w", err)
	}
	return c.do(ctx, "esql", esapi.EsqlQueryRequest{
		Body:   bytes.NewReader(payload),
		Format: "json",
		Header: c.header(),
	})
}

// Aliases returns the aliases matching pattern, or all aliases when it is empty.
func (c *Client) Aliases(ctx context.Context, pattern string) (string, error) {
	req := esapi.IndicesGetAliasRequest{Header: c.header()}
	if pattern != "" {
		req.Name = []string{pattern}
	}
	return c.do(ctx, "aliases", req)
}

// DataStreams returns the data streams matching pattern, or all of them when it is empty.
func (c *Client) DataStreams(ctx context.Context, pattern string) (string, error) {
	req := esapi.IndicesGetDataStreamRequest{Header: c.header()}
	if pattern != "" {
		req.Name = []string{pattern}
	}
	return c.do(ctx, "data streams", req)
}

func (c *Client) do(ctx context.Context, op string, req esapi.Request) (string, error) {
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", op, err)
	}

	if res.IsError() {
		c.log.Debug("request rejected", slog.String("op", op), slog.Int("status", res.StatusCode))
		return "", &RequestError{
			StatusCode: res.StatusCode,
			Status:     res.Status(),
			Body:       string(data),
		}
	}

	return string(data), nil
}

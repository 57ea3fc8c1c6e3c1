package offline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize bounds a single fetched asset
const maxBodySize = 10 << 20

// HTTPFetcher fetches absolute URLs over the network
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher whose requests give up after timeout
func NewHTTPFetcher(timeout time.Duration) FetcherInterface {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, req *http.Request) (*Response, error) {
	resp, err := f.client.Do(req.Clone(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", req.URL, err)
	}

	return &Response{
		URL:        CacheKey(req.URL),
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

// HandlerFetcher serves relative URLs from an in-process handler, such as
// the embedded static file server
type HandlerFetcher struct {
	handler http.Handler
}

func NewHandlerFetcher(handler http.Handler) FetcherInterface {
	return &HandlerFetcher{handler: handler}
}

func (f *HandlerFetcher) Fetch(ctx context.Context, req *http.Request) (*Response, error) {
	w := newBufferedResponseWriter()
	f.handler.ServeHTTP(w, req.Clone(ctx))

	return &Response{
		URL:        CacheKey(req.URL),
		StatusCode: w.status,
		Header:     w.header.Clone(),
		Body:       w.body.Bytes(),
	}, nil
}

// RoutingFetcher sends absolute URLs to remote and everything else to local
type RoutingFetcher struct {
	local  FetcherInterface
	remote FetcherInterface
}

func NewRoutingFetcher(local, remote FetcherInterface) FetcherInterface {
	return &RoutingFetcher{local: local, remote: remote}
}

func (f *RoutingFetcher) Fetch(ctx context.Context, req *http.Request) (*Response, error) {
	if req.URL.IsAbs() {
		return f.remote.Fetch(ctx, req)
	}
	return f.local.Fetch(ctx, req)
}

type bufferedResponseWriter struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newBufferedResponseWriter() *bufferedResponseWriter {
	return &bufferedResponseWriter{header: make(http.Header), status: http.StatusOK}
}

func (w *bufferedResponseWriter) Header() http.Header {
	return w.header
}

func (w *bufferedResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
}

func (w *bufferedResponseWriter) Write(p []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(p)
}

package offline

import (
	"context"
	"net/http"
	"net/url"
)

// Response is a stored response, replayed verbatim on a cache hit
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// CacheStorageInterface holds every named cache
type CacheStorageInterface interface {
	// Open returns the named cache, creating it when absent
	Open(ctx context.Context, name string) (CacheInterface, error)
	// Keys lists cache names in creation order
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) (bool, error)
	// Match looks for key in every cache, oldest cache first
	Match(ctx context.Context, key string) (*Response, bool, error)
}

// CacheInterface is one named cache
type CacheInterface interface {
	Name() string
	// AddAll stores every response or none of them
	AddAll(ctx context.Context, responses []*Response) error
	Match(ctx context.Context, key string) (*Response, bool, error)
	Keys(ctx context.Context) ([]string, error)
}

// FetcherInterface performs a request against the network
type FetcherInterface interface {
	Fetch(ctx context.Context, req *http.Request) (*Response, error)
}

// ManagerInterface runs the cache lifecycle and answers intercepted requests
type ManagerInterface interface {
	Install(ctx context.Context) error
	Activate(ctx context.Context) error
	Run(ctx context.Context) error
	Fetch(ctx context.Context, req *http.Request) (*Response, error)
	Match(ctx context.Context, req *http.Request) (*Response, bool, error)
	Status() Status
}

// CacheKey identifies a request in a cache: the full URL for remote
// resources, the path and query for local ones
func CacheKey(u *url.URL) string {
	if u.IsAbs() {
		return u.String()
	}
	return u.RequestURI()
}

package offline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"expense-tracker/internal/services"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNotInstalled = errors.New("offline cache is not installed")
	ErrNilResponse  = errors.New("response cannot be nil")
)

// State is a step of the cache lifecycle
type State string

const (
	StatePending    State = "pending"
	StateInstalling State = "installing"
	StateInstalled  State = "installed"
	StateActivated  State = "activated"
	StateFailed     State = "failed"
)

// Status is a point-in-time view of the manager
type Status struct {
	CacheName   string     `json:"cache_name"`
	State       State      `json:"state"`
	Ready       bool       `json:"ready"`
	Entries     int        `json:"entries"`
	Manifest    []string   `json:"manifest"`
	LastError   string     `json:"last_error,omitempty"`
	InstalledAt *time.Time `json:"installed_at,omitempty"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}

// Manager installs a fixed manifest into a versioned cache, removes caches
// of other versions on activation and serves cached responses.
type Manager struct {
	// runMu serializes Run
	runMu    sync.Mutex
	mu       sync.RWMutex
	version  string
	manifest []string
	storage  CacheStorageInterface
	fetcher  FetcherInterface
	metrics  services.MetricsRecorderInterface
	activity services.ActivityLoggerInterface
	logger   *slog.Logger

	state       State
	entries     int
	lastErr     error
	installedAt time.Time
	activatedAt time.Time
}

// NewManager creates a cache manager for version
func NewManager(
	version string,
	manifest []string,
	storage CacheStorageInterface,
	fetcher FetcherInterface,
	metrics services.MetricsRecorderInterface,
	activity services.ActivityLoggerInterface,
	logger *slog.Logger,
) ManagerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		version:  version,
		manifest: append([]string(nil), manifest...),
		storage:  storage,
		fetcher:  fetcher,
		metrics:  metrics,
		activity: activity,
		logger:   logger,
		state:    StatePending,
	}
}

// Install fetches every manifest URL concurrently and stores the responses
// only if all of them succeed
func (m *Manager) Install(ctx context.Context) error {
	start := time.Now()
	m.setState(StateInstalling, nil)

	err := m.install(ctx)
	if err != nil {
		m.setState(StateFailed, err)
		m.metrics.IncrementCounter("cache.install", map[string]string{"status": "failed"})
		m.activity.LogCacheEvent(ctx, "install_failed", m.version, err)
		return fmt.Errorf("failed to install cache %q: %w", m.version, err)
	}

	m.mu.Lock()
	m.state = StateInstalled
	m.entries = len(m.manifest)
	m.lastErr = nil
	m.installedAt = time.Now().UTC()
	m.mu.Unlock()

	m.metrics.IncrementCounter("cache.install", map[string]string{"status": "success"})
	m.metrics.RecordProcessingTime("cache.install", time.Since(start))
	m.metrics.RecordGauge("cache.entries", float64(len(m.manifest)), nil)
	m.activity.LogCacheEvent(ctx, "installed", m.version, nil)

	return nil
}

func (m *Manager) install(ctx context.Context) error {
	cache, err := m.storage.Open(ctx, m.version)
	if err != nil {
		return err
	}

	responses := make([]*Response, len(m.manifest))
	g, gctx := errgroup.WithContext(ctx)

	for i, rawURL := range m.manifest {
		i, rawURL := i, rawURL
		g.Go(func() error {
			req, err := http.NewRequestWithContext(gctx, http.MethodGet, rawURL, nil)
			if err != nil {
				return fmt.Errorf("invalid manifest url %q: %w", rawURL, err)
			}

			resp, err := m.fetcher.Fetch(gctx, req)
			if err != nil {
				return err
			}
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
			}

			responses[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return cache.AddAll(ctx, responses)
}

// Activate deletes every cache whose name differs from the current version
func (m *Manager) Activate(ctx context.Context) error {
	m.mu.RLock()
	state := m.state
	m.mu.RUnlock()

	if state != StateInstalled && state != StateActivated {
		return ErrNotInstalled
	}

	names, err := m.storage.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list caches: %w", err)
	}

	for _, name := range names {
		if name == m.version {
			continue
		}
		if _, err := m.storage.Delete(ctx, name); err != nil {
			m.activity.LogCacheEvent(ctx, "delete_failed", name, err)
			return fmt.Errorf("failed to delete stale cache %q: %w", name, err)
		}
		m.metrics.IncrementCounter("cache.deleted", nil)
		m.activity.LogCacheEvent(ctx, "deleted", name, nil)
	}

	m.mu.Lock()
	m.state = StateActivated
	m.activatedAt = time.Now().UTC()
	m.mu.Unlock()

	m.activity.LogCacheEvent(ctx, "activated", m.version, nil)
	return nil
}

// Run installs and then activates. A failed install leaves the
// application on network-only serving. Concurrent calls run one at a time.
func (m *Manager) Run(ctx context.Context) error {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if err := m.Install(ctx); err != nil {
		m.logger.WarnContext(ctx, "offline cache unavailable, serving from network only",
			"cache", m.version,
			"error", err,
		)
		return err
	}

	if err := m.Activate(ctx); err != nil {
		m.logger.ErrorContext(ctx, "offline cache activation failed", "cache", m.version, "error", err)
		return err
	}

	m.logger.InfoContext(ctx, "offline cache ready", "cache", m.version, "entries", len(m.manifest))
	return nil
}

// Match looks up req in every cache
func (m *Manager) Match(ctx context.Context, req *http.Request) (*Response, bool, error) {
	if req.Method != http.MethodGet {
		return nil, false, nil
	}

	resp, ok, err := m.storage.Match(ctx, CacheKey(req.URL))
	if err != nil {
		return nil, false, err
	}
	if ok {
		m.metrics.IncrementCounter("cache.hit", nil)
	} else {
		m.metrics.IncrementCounter("cache.miss", nil)
	}
	return resp, ok, nil
}

// Fetch answers req from the cache, falling back to the network. Network
// responses are returned as-is and never stored.
func (m *Manager) Fetch(ctx context.Context, req *http.Request) (*Response, error) {
	resp, ok, err := m.Match(ctx, req)
	if err != nil {
		m.logger.WarnContext(ctx, "cache lookup failed", "url", req.URL.String(), "error", err)
	}
	if ok {
		return resp, nil
	}
	return m.fetcher.Fetch(ctx, req)
}

func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Status{
		CacheName: m.version,
		State:     m.state,
		Ready:     m.state == StateActivated,
		Entries:   m.entries,
		Manifest:  append([]string(nil), m.manifest...),
	}
	if m.lastErr != nil {
		s.LastError = m.lastErr.Error()
	}
	if !m.installedAt.IsZero() {
		t := m.installedAt
		s.InstalledAt = &t
	}
	if !m.activatedAt.IsZero() {
		t := m.activatedAt
		s.ActivatedAt = &t
	}
	return s
}

func (m *Manager) setState(state State, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.lastErr = err
}

package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/cuserror"
)

const fetcherCacheKey = "merged"

// NewFetcher builds a fetcher for a base config document and an optional
// overlay document. Fetched results are cached for cacheTTL; zero disables
// caching.
func NewFetcher(baseURL, overlayURL string, cacheTTL time.Duration, httpCli *http.Client, logger l.Wrapper) *Fetcher {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "configFetcher"))

	if baseURL == "" {
		logger.Fatal("no base url")
	}

	if httpCli == nil {
		httpCli = &http.Client{
			Timeout: time.Second * 10,
		}
	}

	impl := &Fetcher{
		logger:     logger,
		baseURL:    baseURL,
		overlayURL: overlayURL,
		httpCli:    httpCli,
	}

	if cacheTTL > 0 {
		impl.cached = cache.New(cacheTTL, cacheTTL)
	}

	return impl
}

type Fetcher struct {
	logger     l.Wrapper
	baseURL    string
	overlayURL string
	httpCli    *http.Client
	cached     *cache.Cache
}

// Fetch retrieves both documents in parallel, merges the overlay over the
// base and returns the result. A fresh cached merge short-circuits the
// network entirely.
func (impl *Fetcher) Fetch(ctx context.Context) (map[string]any, error) {
	if impl.cached != nil {
		if v, ok := impl.cached.Get(fetcherCacheKey); ok {
			// nolint:forcetypeassert
			return v.(map[string]any), nil
		}
	}

	type fetchResult struct {
		doc map[string]any
		err error
	}

	baseCh := make(chan fetchResult, 1)
	overlayCh := make(chan fetchResult, 1)

	go func() {
		doc, err := impl.fetchOne(ctx, impl.baseURL)
		baseCh <- fetchResult{doc: doc, err: err}
	}()

	go func() {
		if impl.overlayURL == "" {
			overlayCh <- fetchResult{}

			return
		}

		doc, err := impl.fetchOne(ctx, impl.overlayURL)
		overlayCh <- fetchResult{doc: doc, err: err}
	}()

	base := <-baseCh
	overlay := <-overlayCh

	if base.err != nil {
		impl.logger.WithFields(l.ErrorField(base.err), l.StringField("url", impl.baseURL)).
			Error("fetch base config failed")

		return nil, base.err
	}

	if overlay.err != nil {
		impl.logger.WithFields(l.ErrorField(overlay.err), l.StringField("url", impl.overlayURL)).
			Error("fetch overlay config failed")

		return nil, overlay.err
	}

	merged := Merge(base.doc, overlay.doc)

	if impl.cached != nil {
		impl.cached.Set(fetcherCacheKey, merged, cache.DefaultExpiration)
	}

	return merged, nil
}

func (impl *Fetcher) fetchOne(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := impl.httpCli.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, cuserror.NewWithErrorMsg(fmt.Sprintf("fetch config: status %d on %s", resp.StatusCode, url))
	}

	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return Load(d)
}

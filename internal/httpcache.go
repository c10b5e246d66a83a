/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/s3cache"
)

type CacheOptions struct {
	// Bucket is the S3 bucket backing the cache. Empty selects the in-memory
	// cache.
	Bucket string
	MaxAge time.Duration
	Logger *zap.Logger
}

// NewCachedHttpClient returns an http.Client that caches responses in S3.
// If the bucket cannot be reached it falls back to an in-memory cache.
// Origin cache headers are replaced so every response lives for MaxAge, and
// every request carries UserAgent.
func NewCachedHttpClient(ctx context.Context, opts CacheOptions) *http.Client {
	logger := OrNop(opts.Logger)

	var cache httpcache.Cache
	if opts.Bucket != "" {
		s3c := s3cache.New(ctx, opts.Bucket, s3cache.WithGzip(),
			s3cache.WithLogger(logger))
		if err := s3c.Init(); err != nil {
			logger.Warn("httpcache: failed to init S3 cache; falling back to memory",
				zap.String("bucket", opts.Bucket), zap.Error(err))
		} else {
			cache = s3c
		}
	}
	if cache == nil {
		cache = httpcache.NewMemoryCache()
	}

	return newClient(cache, http.DefaultTransport, opts.MaxAge)
}

func newClient(cache httpcache.Cache, rt http.RoundTripper,
	maxAge time.Duration) *http.Client {

	hc := httpcache.NewTransport(cache)
	// origin responses may forbid caching; rewrite them before httpcache
	// decides whether to store them
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: rt,
		Request: func(req *http.Request) {
			if req.Header.Get("User-Agent") == "" {
				req.Header.Set("User-Agent", UserAgent)
			}
		},
		Response: func(resp *http.Response) error {
			if resp.StatusCode != http.StatusOK {
				return nil
			}
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don’t stomp on the caller’s original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}

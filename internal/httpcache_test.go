/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHttpClient(t *testing.T) {
	var hits atomic.Int32
	var agent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {

		hits.Add(1)
		agent.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Cache-Control", "no-store")
		fmt.Fprintln(w, "sunrise 06:12")
	}))
	defer srv.Close()

	client := NewCachedHttpClient(context.Background(),
		CacheOptions{MaxAge: 5 * time.Minute})

	for i := 0; i < 3; i++ {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Errorf("Failed to read response body")
		}
		if len(data) == 0 {
			t.Errorf("Empty data")
		}
		if i > 0 && resp.Header.Get("X-From-Cache") != "1" {
			t.Errorf("object not cached")
		}
	}

	if n := hits.Load(); n != 1 {
		t.Errorf("origin hit %d times; want 1", n)
	}
	if ua, _ := agent.Load().(string); ua != UserAgent {
		t.Errorf("User-Agent = %q", ua)
	}
}

func TestHttpClientDoesNotCacheErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {

		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewCachedHttpClient(context.Background(),
		CacheOptions{MaxAge: time.Minute})
	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		resp.Body.Close()
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("origin hit %d times; want 2", n)
	}
}

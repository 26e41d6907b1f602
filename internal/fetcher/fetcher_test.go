// internal/fetcher/fetcher_test.go
package fetcher

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tamzrod/quakelight/internal/config"
)

func testQuery(base string, mag float64) Query {
	c := config.Default().Query
	c.BaseURL = base
	return NewQuery(c, mag)
}

// ---- URL ----

func TestQuery_URLPrimary(t *testing.T) {
	q := testQuery("https://earthquake.usgs.gov/fdsnws/event/1/query", 3.5)

	want := "https://earthquake.usgs.gov/fdsnws/event/1/query" +
		"?latitude=34.020728&longitude=-118.692602&maxradiuskm=200" +
		"&format=text&starttime=NOW-48hours&minmagnitude=3.5"

	if got := q.URL(); got != want {
		t.Fatalf("url mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestQuery_URLSecondary(t *testing.T) {
	q := testQuery("http://x/q", 2.0)

	if !strings.HasSuffix(q.URL(), "&minmagnitude=2") {
		t.Fatalf("unexpected magnitude rendering: %s", q.URL())
	}
}

// ---- Fetch ----

func TestFetch_Success(t *testing.T) {
	var gotMag string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMag = r.URL.Query().Get("minmagnitude")
		if r.URL.Query().Get("format") != "text" {
			t.Errorf("format: got=%q want=text", r.URL.Query().Get("format"))
		}
		_, _ = io.WriteString(w, strings.Repeat("x", 301))
	}))
	defer srv.Close()

	body, err := New(srv.Client()).Fetch(context.Background(), testQuery(srv.URL, 3.5))
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if len(body) != 301 {
		t.Fatalf("body length: got=%d want=301", len(body))
	}
	if gotMag != "3.5" {
		t.Fatalf("minmagnitude: got=%q want=3.5", gotMag)
	}
}

func TestFetch_NoContentIsEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	body, err := New(srv.Client()).Fetch(context.Background(), testQuery(srv.URL, 2))
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if len(body) != 0 {
		t.Fatalf("body length: got=%d want=0", len(body))
	}
}

func TestFetch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("bad request ", 50), http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := New(srv.Client()).Fetch(context.Background(), testQuery(srv.URL, 3.5))

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T %v", err, err)
	}
	if fe.Kind != KindStatus || fe.StatusCode != http.StatusBadRequest {
		t.Fatalf("kind/status: got=%s/%d want=status/400", fe.Kind, fe.StatusCode)
	}
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close() // nothing listens any more

	_, err := New(&http.Client{}).Fetch(context.Background(), testQuery(base, 3.5))
	if KindOf(err) != KindTransport {
		t.Fatalf("kind: got=%s want=transport (err=%v)", KindOf(err), err)
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := srv.Client()
	client.Timeout = 50 * time.Millisecond

	_, err := New(client).Fetch(context.Background(), testQuery(srv.URL, 3.5))
	if KindOf(err) != KindTimeout {
		t.Fatalf("kind: got=%s want=timeout (err=%v)", KindOf(err), err)
	}
}

func TestFetch_TruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "500")
		_, _ = io.WriteString(w, "short")
	}))
	defer srv.Close()

	_, err := New(srv.Client()).Fetch(context.Background(), testQuery(srv.URL, 3.5))
	if KindOf(err) != KindBody {
		t.Fatalf("kind: got=%s want=body (err=%v)", KindOf(err), err)
	}
}

func TestFetch_ClosesBodyAndReusesConnection(t *testing.T) {
	var conns int32
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	srv.Config.ConnState = func(_ net.Conn, s http.ConnState) {
		if s == http.StateNew {
			atomic.AddInt32(&conns, 1)
		}
	}
	srv.Start()
	defer srv.Close()

	f := New(srv.Client())
	for i := 0; i < 3; i++ {
		if _, err := f.Fetch(context.Background(), testQuery(srv.URL, 3.5)); err != nil {
			t.Fatalf("Fetch #%d err=%v", i, err)
		}
	}

	if n := atomic.LoadInt32(&conns); n != 1 {
		t.Fatalf("connections: got=%d want=1 (body not released?)", n)
	}
}

func TestFetchError_Code(t *testing.T) {
	err := error(&FetchError{Kind: KindTimeout, URL: "u", Err: context.DeadlineExceeded})

	type coder interface{ Code() uint16 }
	var c coder
	if !errors.As(err, &c) || c.Code() != uint16(KindTimeout) {
		t.Fatalf("code not exposed")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("cause not unwrapped")
	}
}

func TestNewHTTPClient(t *testing.T) {
	c, err := NewHTTPClient(5 * time.Second)
	if err != nil {
		t.Fatalf("NewHTTPClient err=%v", err)
	}
	if c.Timeout != 5*time.Second {
		t.Fatalf("timeout: got=%v want=5s", c.Timeout)
	}
}

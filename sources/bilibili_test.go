package sources

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBilibiliFetchCount(t *testing.T) {
	var gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("Referer")
		if r.URL.Path != "/x/relation/stat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("vmid") != "491306902" {
			t.Errorf("unexpected vmid %s", r.URL.Query().Get("vmid"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":0,"data":{"follower":500}}`))
	}))
	defer server.Close()

	src := NewBilibiliSource(server.URL)
	count := src.FetchCount("491306902")
	if !count.Valid || count.Value != 500 {
		t.Fatalf("expected 500 followers, got %+v", count)
	}
	if gotReferer != "https://space.bilibili.com/491306902/" {
		t.Errorf("expected space referer, got %q", gotReferer)
	}
}

func TestBilibiliAPIErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":-404,"message":"user not found"}`))
	}))
	defer server.Close()

	count := NewBilibiliSource(server.URL).FetchCount("12345")
	if count.Valid || count.Hidden {
		t.Errorf("expected null count on API error, got %+v", count)
	}
}

func TestBilibiliNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	count := NewBilibiliSource(server.URL).FetchCount("491306902")
	if count.Valid {
		t.Errorf("expected null count on 403, got %+v", count)
	}
}

func TestBilibiliMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	count := NewBilibiliSource(server.URL).FetchCount("491306902")
	if count.Valid {
		t.Errorf("expected null count on malformed body, got %+v", count)
	}
}

func TestBilibiliUnreachable(t *testing.T) {
	// Nothing listens here; the adapter must swallow the error.
	src := NewBilibiliSource("http://127.0.0.1:1")
	src.Client.Timeout = 200 * time.Millisecond
	count := src.FetchCount("491306902")
	if count.Valid {
		t.Errorf("expected null count when unreachable, got %+v", count)
	}
}

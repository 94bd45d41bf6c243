package sources

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestYouTubeFetchCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/channels" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("part") != "statistics" {
			t.Errorf("expected part=statistics, got %s", r.URL.Query().Get("part"))
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected key=test-key, got %s", r.URL.Query().Get("key"))
		}
		w.Write([]byte(`{"items":[{"statistics":{"subscriberCount":"1200","hiddenSubscriberCount":false}}]}`))
	}))
	defer server.Close()

	count := NewYouTubeSource(server.URL, "test-key").FetchCount("UC_5lJHgnMP_lb_VpIiXV0hQ")
	if !count.Valid || count.Value != 1200 {
		t.Fatalf("expected 1200 subscribers, got %+v", count)
	}
}

func TestYouTubeHiddenSubscriberCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"statistics":{"subscriberCount":"0","hiddenSubscriberCount":true}}]}`))
	}))
	defer server.Close()

	count := NewYouTubeSource(server.URL, "test-key").FetchCount("UC_5lJHgnMP_lb_VpIiXV0hQ")
	if !count.Hidden {
		t.Fatalf("expected hidden sentinel, got %+v", count)
	}
}

func TestYouTubeMissingAPIKeySkipsNetwork(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	count := NewYouTubeSource(server.URL, "").FetchCount("UC_5lJHgnMP_lb_VpIiXV0hQ")
	if count.Valid || count.Hidden {
		t.Errorf("expected null count without API key, got %+v", count)
	}
	if atomic.LoadInt64(&calls) != 0 {
		t.Errorf("expected zero outbound calls, got %d", calls)
	}
}

func TestYouTubeChannelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	count := NewYouTubeSource(server.URL, "test-key").FetchCount("UC_nope")
	if count.Valid || count.Hidden {
		t.Errorf("expected null count for missing channel, got %+v", count)
	}
}

func TestYouTubeMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"statistics":{"subscriberCount":"abc","hiddenSubscriberCount":false}}]}`))
	}))
	defer server.Close()

	count := NewYouTubeSource(server.URL, "test-key").FetchCount("UC_5lJHgnMP_lb_VpIiXV0hQ")
	if count.Valid {
		t.Errorf("expected null count for unparsable subscriberCount, got %+v", count)
	}
}

func TestYouTubeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	count := NewYouTubeSource(server.URL, "test-key").FetchCount("UC_5lJHgnMP_lb_VpIiXV0hQ")
	if count.Valid {
		t.Errorf("expected null count on 500, got %+v", count)
	}
}

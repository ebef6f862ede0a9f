package transcript

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.12" dur="3.4">pehli &amp;quot;khabar&amp;quot;</text>
  <text start="3.52" dur="2.1">   </text>
  <text start="5.62" dur="4">doosri khabar &amp;#39;aaj&amp;#39;</text>
</transcript>`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithBase(server.Client(), server.URL)
}

func TestFetchParsesCues(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(sampleTimedText))
	})

	segments, err := client.Fetch(context.Background(), "vid1", "hi")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotQuery["v"][0] != "vid1" || gotQuery["lang"][0] != "hi" {
		t.Fatalf("request query = %v", gotQuery)
	}

	// The blank cue is dropped; double-encoded entities are unescaped.
	if len(segments) != 2 {
		t.Fatalf("Fetch() segments = %d, want 2", len(segments))
	}
	if segments[0].Start != 0.12 || segments[0].Duration != 3.4 {
		t.Fatalf("segments[0] timing = %+v", segments[0])
	}
	if segments[0].Text != `pehli "khabar"` {
		t.Fatalf("segments[0].Text = %q", segments[0].Text)
	}
	if segments[1].Text != "doosri khabar 'aaj'" {
		t.Fatalf("segments[1].Text = %q", segments[1].Text)
	}
}

func TestFetchNotFoundMeansNoTranscript(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Fetch(context.Background(), "vid1", "hi")
	if !errors.Is(err, ports.ErrNoTranscript) {
		t.Fatalf("Fetch() error = %v, want ErrNoTranscript", err)
	}
}

func TestFetchEmptyBodyMeansNoTranscript(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("  \n"))
	})

	_, err := client.Fetch(context.Background(), "vid1", "hi")
	if !errors.Is(err, ports.ErrNoTranscript) {
		t.Fatalf("Fetch() error = %v, want ErrNoTranscript", err)
	}
}

func TestFetchAllBlankCuesMeansNoTranscript(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<transcript><text start="0" dur="1">  </text></transcript>`))
	})

	_, err := client.Fetch(context.Background(), "vid1", "hi")
	if !errors.Is(err, ports.ErrNoTranscript) {
		t.Fatalf("Fetch() error = %v, want ErrNoTranscript", err)
	}
}

func TestFetchServerErrorIsNotNoTranscript(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Fetch(context.Background(), "vid1", "hi")
	if err == nil {
		t.Fatal("Fetch() error = nil")
	}
	if errors.Is(err, ports.ErrNoTranscript) {
		t.Fatalf("Fetch() error = %v, must not be ErrNoTranscript", err)
	}
}

func TestFetchRequiresVideoID(t *testing.T) {
	client := NewClient()
	if _, err := client.Fetch(context.Background(), "  ", "hi"); err == nil {
		t.Fatal("Fetch() error = nil for blank video id")
	}
}

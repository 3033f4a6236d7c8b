package response // import "github.com/bookly/bookly/http/response"

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/bookly/bookly/config"
	"github.com/bookly/bookly/log"
)

func init() {
	config.Opts = config.GetDefaultOptions()
	log.Logger = log.NewLogger()
}

func TestResponseHasCommonHeaders(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		New(w, r).Write()
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}

	for header, expected := range headers {
		actual := resp.Header.Get(header)
		if actual != expected {
			t.Fatalf(`Unexpected header value, got %q instead of %q`, actual, expected)
		}
	}
}

func TestBrotliCompression(t *testing.T) {
	body := bytes.Repeat([]byte("a"), 4096)

	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("Accept-Encoding", "br, gzip")

	w := httptest.NewRecorder()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		New(w, r).WithBody(body).Write()
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	if encoding := resp.Header.Get("Content-Encoding"); encoding != "br" {
		t.Fatalf(`Unexpected content encoding, got %q instead of %q`, encoding, "br")
	}

	decoded, err := io.ReadAll(brotli.NewReader(resp.Body))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, body) {
		t.Fatal("Decompressed body does not match the original")
	}
}

func TestSmallBodySkipsCompression(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("Accept-Encoding", "br")

	w := httptest.NewRecorder()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		New(w, r).WithBody("ok").Write()
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	if encoding := resp.Header.Get("Content-Encoding"); encoding != "" {
		t.Fatalf(`Small responses should not be compressed, got %q`, encoding)
	}
}

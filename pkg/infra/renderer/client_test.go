package renderer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/herald-bot/herald/pkg/domain/model"
	"github.com/herald-bot/herald/pkg/infra/renderer"
)

func TestRenderPage(t *testing.T) {
	pngBytes := []byte("\x89PNG\r\n\x1a\nfake-image-data")

	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.Value(t, r.URL.Path).Equal("/screenshot")
		gt.Value(t, r.Header.Get("Content-Type")).Equal("application/json")

		gt.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	defer ts.Close()

	client := renderer.New(ts.URL)

	image, err := client.RenderPage(context.Background(), "<html>release</html>", model.RenderOptions{
		ViewportWidth:  800,
		ViewportHeight: 400,
		WaitSelector:   "#release-body",
		WaitTimeout:    10 * time.Second,
		FullPage:       true,
	})
	gt.NoError(t, err)
	gt.Value(t, string(image)).Equal(string(pngBytes))

	gt.Value(t, captured["html"]).Equal("<html>release</html>")
	gt.Value(t, captured["fullPage"]).Equal(true)

	viewport, ok := captured["viewport"].(map[string]any)
	gt.True(t, ok)
	gt.Value(t, viewport["width"]).Equal(float64(800))
	gt.Value(t, viewport["height"]).Equal(float64(400))

	waitFor, ok := captured["waitFor"].(map[string]any)
	gt.True(t, ok)
	gt.Value(t, waitFor["selector"]).Equal("#release-body")
	gt.Value(t, waitFor["timeout"]).Equal(float64(10000))
}

func TestRenderPage_OmitsUnsetDirectives(t *testing.T) {
	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte("png"))
	}))
	defer ts.Close()

	client := renderer.New(ts.URL)

	_, err := client.RenderPage(context.Background(), "<html></html>", model.RenderOptions{})
	gt.NoError(t, err)

	if _, ok := captured["viewport"]; ok {
		t.Error("viewport should be omitted when no width is set")
	}
	if _, ok := captured["waitFor"]; ok {
		t.Error("waitFor should be omitted when no selector is set")
	}
}

func TestRenderPage_ServiceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "browser pool exhausted", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := renderer.New(ts.URL)

	_, err := client.RenderPage(context.Background(), "<html></html>", model.DefaultRenderOptions())
	gt.Error(t, err)
}

func TestRenderPage_EmptyImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := renderer.New(ts.URL)

	_, err := client.RenderPage(context.Background(), "<html></html>", model.DefaultRenderOptions())
	gt.Error(t, err)
}

func TestRenderPage_ServiceUnreachable(t *testing.T) {
	client := renderer.New("http://127.0.0.1:1", renderer.WithHTTPClient(&http.Client{
		Timeout: 500 * time.Millisecond,
	}))

	_, err := client.RenderPage(context.Background(), "<html></html>", model.DefaultRenderOptions())
	gt.Error(t, err)
}

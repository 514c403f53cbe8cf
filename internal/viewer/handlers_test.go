package viewer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aristath/quantumlab/internal/modules/render"
	"github.com/aristath/quantumlab/internal/modules/scene"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"nhooyr.io/websocket"
)

func testFigure() render.Figure {
	summary := scene.Summary{Kind: "2d", Title: "Box", X: []float64{0, 1}, Y: []float64{0, 2}}
	return render.NewFigure("box", "Box", "svg", []byte("<svg>box</svg>"), scene.Wide, 100, summary)
}

// setupTestServer serves one figure and collects dismiss reasons
func setupTestServer(t *testing.T) (*httptest.Server, render.Figure, chan string) {
	fig := testFigure()
	reasons := make(chan string, 4)
	handler := NewHandler(fig, func(reason string) { reasons <- reason }, zerolog.Nop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, fig, reasons
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func TestRegisterRoutes(t *testing.T) {
	handler := NewHandler(testFigure(), func(string) {}, zerolog.New(nil).Level(zerolog.Disabled))
	router := chi.NewRouter()

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	}, "RegisterRoutes should not panic")
}

func TestHandleIndex_RedirectsToFigure(t *testing.T) {
	srv, fig, _ := setupTestServer(t)

	resp, err := noRedirectClient().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/figures/"+fig.ID.String(), resp.Header.Get("Location"))
}

func TestHandlePage(t *testing.T) {
	srv, fig, _ := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/figures/" + fig.ID.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	page := string(body)
	assert.Contains(t, page, "<title>Box</title>")
	assert.Contains(t, page, `/figures/`+fig.ID.String()+`/image`)
	assert.Contains(t, page, `width="1000" height="500"`)
	assert.Contains(t, page, `<button id="close">Close</button>`)
	assert.Contains(t, page, "new WebSocket(")
}

func TestHandleImage(t *testing.T) {
	srv, fig, _ := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/figures/" + fig.ID.String() + "/image")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "<svg>box</svg>", string(body))
}

func TestUnknownFigureID(t *testing.T) {
	srv, _, _ := setupTestServer(t)

	for _, path := range []string{
		"/figures/00000000-0000-0000-0000-000000000000",
		"/figures/nope/image",
		"/api/figures/nope",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestHandleGetFigure_JSON(t *testing.T) {
	srv, fig, _ := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/figures/" + fig.ID.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Data     scene.Summary          `json:"data"`
		Metadata map[string]interface{} `json:"metadata"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "2d", body.Data.Kind)
	assert.Equal(t, []float64{0, 2}, body.Data.Y)
	assert.Equal(t, fig.ID.String(), body.Metadata["figure_id"])
	assert.Equal(t, "svg", body.Metadata["format"])
	assert.Equal(t, float64(1000), body.Metadata["width_px"])
}

func TestHandleGetFigure_Msgpack(t *testing.T) {
	srv, fig, _ := setupTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/figures/"+fig.ID.String(), nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/msgpack")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/msgpack", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Data scene.Summary `msgpack:"data"`
	}
	require.NoError(t, msgpack.Unmarshal(raw, &body))
	assert.Equal(t, "Box", body.Data.Title)
	assert.Equal(t, []float64{0, 1}, body.Data.X)
}

func TestHandleClose(t *testing.T) {
	srv, fig, reasons := setupTestServer(t)

	resp, err := http.Post(srv.URL+"/api/figures/"+fig.ID.String()+"/close", "text/plain", strings.NewReader(""))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "close button", <-reasons)
}

func TestHandleWebSocket_CloseDismisses(t *testing.T) {
	srv, fig, reasons := setupTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/figures/" + fig.ID.String() + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)

	select {
	case reason := <-reasons:
		t.Fatalf("dismissed while the page was open: %s", reason)
	case <-time.After(50 * time.Millisecond):
	}

	conn.Close(websocket.StatusNormalClosure, "tab closed")

	select {
	case reason := <-reasons:
		assert.Equal(t, "page closed", reason)
	case <-ctx.Done():
		t.Fatal("websocket close did not dismiss the figure")
	}
}

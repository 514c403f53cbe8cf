package viewer

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/aristath/quantumlab/internal/modules/render"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
	"nhooyr.io/websocket"
)

const msgpackContentType = "application/msgpack"

// Handler serves a single figure and reports when its page is dismissed
type Handler struct {
	fig     render.Figure
	dismiss func(reason string)
	log     zerolog.Logger
}

// NewHandler creates a new figure handler. dismiss may be called more than once.
func NewHandler(fig render.Figure, dismiss func(reason string), log zerolog.Logger) *Handler {
	return &Handler{
		fig:     fig,
		dismiss: dismiss,
		log:     log.With().Str("handler", "viewer").Logger(),
	}
}

// pagePath is where the figure's HTML page lives.
func (h *Handler) pagePath() string {
	return "/figures/" + h.fig.ID.String()
}

// figureOnly rejects requests for any figure id but the one being shown.
func (h *Handler) figureOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != h.fig.ID.String() {
			http.Error(w, "Figure not found", http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleIndex handles GET /
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.pagePath(), http.StatusFound)
}

// HandlePage handles GET /figures/{id}
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTemplate.Execute(w, pageData{
		Title:    h.fig.Title,
		ImageURL: h.pagePath() + "/image",
		CloseURL: "/api" + h.pagePath() + "/close",
		WSPath:   h.pagePath() + "/ws",
		Width:    h.fig.WidthPx,
		Height:   h.fig.HeightPx,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to render page")
	}
}

// HandleImage handles GET /figures/{id}/image
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", h.fig.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(h.fig.Data); err != nil {
		h.log.Debug().Err(err).Msg("Failed to write image")
	}
}

// HandleGetFigure handles GET /api/figures/{id}
// It answers in msgpack when the client accepts it and JSON otherwise.
func (h *Handler) HandleGetFigure(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"data": h.fig.Summary,
		"metadata": map[string]interface{}{
			"figure_id": h.fig.ID.String(),
			"format":    h.fig.Format,
			"width_px":  h.fig.WidthPx,
			"height_px": h.fig.HeightPx,
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	if strings.Contains(r.Header.Get("Accept"), msgpackContentType) {
		h.writeMsgpack(w, http.StatusOK, response)
		return
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleClose handles POST /api/figures/{id}/close
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.dismiss("close button")
	w.WriteHeader(http.StatusNoContent)
}

// HandleWebSocket handles GET /figures/{id}/ws
// The connection stays open while the page is; its end dismisses the figure.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to accept websocket")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	h.log.Debug().Msg("Viewer page connected")
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()

	h.dismiss("page closed")
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeMsgpack writes a msgpack response
func (h *Handler) writeMsgpack(w http.ResponseWriter, status int, data interface{}) {
	body, err := msgpack.Marshal(data)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to encode msgpack response")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", msgpackContentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Debug().Err(err).Msg("Failed to write msgpack response")
	}
}

type pageData struct {
	Title    string
	ImageURL string
	CloseURL string
	WSPath   string
	Width    int
	Height   int
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; background: #000; color: #fff; font-family: sans-serif; text-align: center; }
img { display: block; margin: 1em auto; max-width: 100%; }
button { background: #222; color: #fff; border: 1px solid #888; padding: .5em 1.5em; cursor: pointer; }
</style>
</head>
<body>
<img src="{{.ImageURL}}" width="{{.Width}}" height="{{.Height}}" alt="{{.Title}}">
<button id="close">Close</button>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "{{.WSPath}}");
document.getElementById("close").addEventListener("click", async () => {
  await fetch("{{.CloseURL}}", { method: "POST" });
  ws.close();
  window.close();
});
</script>
</body>
</html>
`))

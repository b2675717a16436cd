package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"path"
	"strings"

	"github.com/revsim/debt-projector/internal/calculation"
	"github.com/revsim/debt-projector/internal/config"
	"github.com/revsim/debt-projector/internal/domain"
)

//go:embed web
var webAssets embed.FS

// WebServer hosts the compiled presentation bundle and the simulation API.
// It is stateless: every request is computed from its own parameters.
type WebServer struct {
	engine *calculation.Engine
	addr   string
	assets fs.FS
}

// NewWebServer creates a new web server listening on addr.
func NewWebServer(engine *calculation.Engine, addr string) *WebServer {
	assets, err := fs.Sub(webAssets, "web")
	if err != nil {
		// The web directory is compiled into the binary; a failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return &WebServer{engine: engine, addr: addr, assets: assets}
}

// Handler returns the HTTP handler with all routes registered.
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/simulate", ws.handleSimulate)
	mux.HandleFunc("/", ws.handleStatic)
	return mux
}

// Start listens on the configured address and serves until the listener fails.
func (ws *WebServer) Start() error {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}
	log.Printf("Serving debt projector on %s", url)

	return http.Serve(listener, ws.Handler())
}

// handleStatic serves the embedded presentation bundle. Unmatched paths fall
// back to the root document so client-side routes survive a page reload.
func (ws *WebServer) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" {
		name = "index.html"
	}
	if f, err := ws.assets.Open(name); err == nil {
		f.Close()
		http.FileServer(http.FS(ws.assets)).ServeHTTP(w, r)
		return
	}

	// SPA fallback: always return the root document for unknown paths.
	data, err := fs.ReadFile(ws.assets, "index.html")
	if err != nil {
		http.Error(w, "index.html missing from embedded assets", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// handleSimulate runs one simulation from JSON parameters.
func (ws *WebServer) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params domain.SimulationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := config.ValidateParams(params); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := calculation.Simulate(params)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		ws.engine.Logger.Errorf("failed to encode simulation response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

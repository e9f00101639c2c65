package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/juren53/pathmanager/internal/model"
	"github.com/juren53/pathmanager/internal/report"
	"github.com/juren53/pathmanager/internal/resolve"
)

//go:embed static/*
var staticFS embed.FS

// StartServer starts the web server on the default port 8080.
func StartServer() {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/snapshot", handleSnapshot)
	mux.HandleFunc("/api/ls", handleLs)

	port := "8080"
	fmt.Printf("Starting pathmanager web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal("web server failed", "err", err)
	}
}

// handleSnapshot resolves a fresh snapshot per request so the page's
// refresh button reflects live state.
func handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := resolve.NewResolver().Resolve()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	response := struct {
		*model.Snapshot
		Report  string `json:"Report"`
		Version string `json:"Version"`
	}{
		Snapshot: snap,
		Report:   report.Render(snap, 0),
		Version:  model.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func handleLs(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}

	preview := model.GetDirPreview(path, 200)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(preview)
}

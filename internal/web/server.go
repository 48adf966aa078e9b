package web

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"dirsize/internal/logging"
	"dirsize/internal/metrics"
	"dirsize/internal/model"
	"dirsize/internal/session"
	"strings"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// Server answers analysis requests for one transcript. The transcript is
// re-read on every request, so edits show up on reload.
type Server struct {
	path       string
	thresholds model.Thresholds
}

func NewServer(path string, thresholds model.Thresholds) *Server {
	return &Server{path: path, thresholds: thresholds}
}

// Handler returns the full route table wrapped in logging and metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/analysis", s.handleAnalysis)
	mux.HandleFunc("/api/dir", s.handleDir)
	mux.HandleFunc("/api/help", handleHelp)
	mux.Handle("/metrics", metrics.Handler())

	return logging.Middleware(metrics.Middleware(mux))
}

// StartServer serves the web UI on addr until the listener fails.
func StartServer(addr, path string, thresholds model.Thresholds) error {
	s := NewServer(path, thresholds)
	logging.Info("starting web server", zap.String("addr", addr), zap.String("transcript", path))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) analyze(w http.ResponseWriter) (*session.Analysis, bool) {
	a, err := session.NewAnalyzer(s.thresholds).AnalyzeFile(s.path)
	if err == nil {
		return a, true
	}

	var ctxErr *session.ContextError
	if errors.As(err, &ctxErr) {
		writeJSON(w, http.StatusUnprocessableEntity, struct {
			Error   string
			Context model.LineContext
		}{
			Error:   ctxErr.Err.Error(),
			Context: ctxErr.Context,
		})
		return nil, false
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
	return nil, false
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyze(w)
	if !ok {
		return
	}

	response := struct {
		model.AnalysisResult
		Report        string `json:"Report"`
		VerboseReport string `json:"VerboseReport"`
		Version       string `json:"Version"`
	}{
		AnalysisResult: a.Result,
		Report:         session.GenerateReport(a.Result, false),
		VerboseReport:  session.GenerateReport(a.Result, true),
		Version:        model.Version,
	}
	writeJSON(w, http.StatusOK, response)
}

type DirEntry struct {
	Name  string `json:"Name"`
	Path  string `json:"Path"`
	IsDir bool   `json:"IsDir"`
	Size  int64  `json:"Size"`
}

func (s *Server) handleDir(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}

	a, ok := s.analyze(w)
	if !ok {
		return
	}

	node := a.Tree.Find(path)
	if node == nil {
		http.Error(w, "no such path: "+path, http.StatusNotFound)
		return
	}
	if !node.IsDir() {
		http.Error(w, "not a directory: "+path, http.StatusBadRequest)
		return
	}

	entries := []DirEntry{}
	for _, c := range node.Children() {
		entries = append(entries, DirEntry{
			Name:  c.Name(),
			Path:  c.Path(),
			IsDir: c.IsDir(),
			Size:  a.Sizes.SizeOf(c),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("encode response", zap.Error(err))
	}
}

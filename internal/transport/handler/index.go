package handler

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Index serves the single-page research form.
type Index struct {
	maxWords int
	maxPages int
}

func NewIndex(maxWords, maxPages int) *Index {
	return &Index{
		maxWords: maxWords,
		maxPages: maxPages,
	}
}

type indexData struct {
	MaxWords int
	MaxPages int
}

func (h *Index) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{MaxWords: h.maxWords, MaxPages: h.maxPages}); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

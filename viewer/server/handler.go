package server

import (
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"prdesk.io/viewer/report"
)

type handler struct {
	bundle atomic.Pointer[report.Bundle]
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	doc := h.bundle.Load().Doc(req.URL.EscapedPath())
	if doc == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if req.Method == http.MethodGet {
			w.Write([]byte("not found"))
		}
		return
	}

	w.Header().Set("Content-Type", doc.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(doc.Data); err != nil {
		log.Printf("failed to write response for %v: %v", req.URL.EscapedPath(), err)
	}
}

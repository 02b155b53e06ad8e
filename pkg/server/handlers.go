package server

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mermaidkit/pkg/buildinfo"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/gallery"
	"github.com/matzehuels/mermaidkit/pkg/render/ink"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleListExamples(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"families": gallery.Families()})
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	d, err := gallery.Build(chi.URLParam(r, "family"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, d.String())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	script, err := readScript(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.render(w, r, script)
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	script, err := readScript(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := store.NewDocument(r.URL.Query().Get("title"), script)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Put(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("diagram saved", "id", doc.ID, "title", doc.Title)
	w.Header().Set("Location", "/diagrams/"+doc.ID)
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []*store.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("diagram deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderDiagram(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	s.render(w, r, doc.Script)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, script string) {
	format, err := ink.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, err)
		return
	}
	opts, pos, err := parseRenderQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := s.renderer.Fetch(r.Context(), script, format, opts)
	if err != nil {
		s.logger.Warn("render failed", "format", format, "err", err)
		writeError(w, err)
		return
	}

	switch {
	case format == ink.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
	case pos != ink.PositionNone:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data = []byte(ink.WrapHTML(string(data), pos))
	default:
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.Write(data)
}

func readScript(w http.ResponseWriter, r *http.Request) (string, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxScriptBytes))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "request body must contain a mermaid script")
	}
	return string(data), nil
}

func parseRenderQuery(q url.Values) (ink.Options, ink.Position, error) {
	var opts ink.Options
	var err error
	if v := q.Get("width"); v != "" {
		if opts.Width, err = strconv.Atoi(v); err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "width")
		}
	}
	if v := q.Get("height"); v != "" {
		if opts.Height, err = strconv.Atoi(v); err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "height")
		}
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "scale")
		}
	}
	if err := opts.Validate(); err != nil {
		return opts, "", err
	}
	pos, err := ink.ParsePosition(q.Get("position"))
	if err != nil {
		return opts, "", err
	}
	return opts, pos, nil
}

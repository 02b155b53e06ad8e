package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

type bundle struct {
	Documents []*store.Document `json:"documents"`
}

// WriteJSON encodes docs as an indented bundle and writes it to w.
func WriteJSON(docs []*store.Document, w io.Writer) error {
	if docs == nil {
		docs = []*store.Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bundle{Documents: docs}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	return nil
}

// ExportJSON writes docs to a JSON file at path.
func ExportJSON(docs []*store.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(docs, f)
}

// ExportScripts saves each document as <dir>/<title>.mmd and returns the
// written paths. Documents sharing a title overwrite each other in order.
func ExportScripts(docs []*store.Document, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
	}
	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		path := filepath.Join(dir, d.Title+diagram.DefaultExtension)
		if err := d.Graph().Save(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

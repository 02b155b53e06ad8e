package io

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

// ReadJSON decodes a bundle from r.
//
// Each document needs a valid title and a non-empty script. Documents
// without an ID get a new one, and zero timestamps are set to now. ReadJSON
// fails with ErrCodeInvalidInput on malformed JSON, an invalid document or a
// duplicate ID. It does not close r.
func ReadJSON(r io.Reader) ([]*store.Document, error) {
	var data bundle
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}

	now := time.Now().UTC()
	seen := make(map[string]bool, len(data.Documents))
	for i, d := range data.Documents {
		if d == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "document %d is null", i)
		}
		if err := errors.ValidateTitle(d.Title); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "document %d", i)
		}
		if strings.TrimSpace(d.Script) == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "document %d (%s): empty script", i, d.Title)
		}
		if d.ID == "" {
			d.ID = uuid.NewString()
		} else if _, err := uuid.Parse(d.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "document %d: invalid id %q", i, d.ID)
		}
		if seen[d.ID] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate document id %s", d.ID)
		}
		seen[d.ID] = true
		if d.CreatedAt.IsZero() {
			d.CreatedAt = now
		}
		if d.UpdatedAt.IsZero() {
			d.UpdatedAt = d.CreatedAt
		}
	}
	return data.Documents, nil
}

// ImportJSON reads a bundle file at path. A missing file fails with
// ErrCodeFileNotFound.
func ImportJSON(path string) ([]*store.Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

func TestRoundTrip(t *testing.T) {
	a, _ := store.NewDocument("alpha", "pie\n")
	b, _ := store.NewDocument("beta", "mindmap\n")
	path := filepath.Join(t.TempDir(), "bundle.json")

	if err := ExportJSON([]*store.Document{a, b}, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	docs, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents", len(docs))
	}
	if docs[0].ID != a.ID || docs[1].Script != "mindmap\n" || !docs[0].CreatedAt.Equal(a.CreatedAt) {
		t.Errorf("round trip mismatch: %+v %+v", docs[0], docs[1])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n  \"documents\": []\n}\n" {
		t.Errorf("WriteJSON(nil) = %q", got)
	}
}

func TestReadJSONDefaults(t *testing.T) {
	docs, err := ReadJSON(strings.NewReader(`{"documents":[{"title":"x","script":"pie\n"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if docs[0].ID == "" || docs[0].CreatedAt.IsZero() || !docs[0].UpdatedAt.Equal(docs[0].CreatedAt) {
		t.Errorf("defaults not applied: %+v", docs[0])
	}
}

func TestReadJSONErrors(t *testing.T) {
	const id = "0b6c1f7e-4d0a-4d8e-9a55-3f3d1b7f2c11"
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"documents":`},
		{"null document", `{"documents":[null]}`},
		{"no title", `{"documents":[{"script":"pie"}]}`},
		{"no script", `{"documents":[{"title":"x"}]}`},
		{"bad id", `{"documents":[{"id":"../x","title":"x","script":"pie"}]}`},
		{"duplicate", `{"documents":[{"id":"` + id + `","title":"x","script":"pie"},{"id":"` + id + `","title":"y","script":"pie"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ReadJSON error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportScripts(t *testing.T) {
	a, _ := store.NewDocument("alpha", "pie\n")
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := ExportScripts([]*store.Document{a}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "alpha.mmd" {
		t.Fatalf("paths = %v", paths)
	}
	data, _ := os.ReadFile(paths[0])
	if string(data) != "pie\n" {
		t.Errorf("content = %q", data)
	}
}

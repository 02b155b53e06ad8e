// Package store keeps saved diagram scripts.
//
// A [Document] is a titled Mermaid script with an ID and timestamps. The
// [Store] interface has three implementations:
//
//   - [MemoryStore]: process-local, used by tests and `serve --ephemeral`
//   - [FileStore]: one JSON file per document, used by the CLI
//   - [MongoStore]: a MongoDB collection keyed by document ID
//
// # Usage
//
//	st, err := store.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	doc, err := store.NewDocument("login flow", g.Script)
//	if err != nil {
//	    return err
//	}
//	err = st.Put(ctx, doc)
//
// Get and Delete return an error with code NOT_FOUND for unknown IDs.
package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Document is a saved diagram.
type Document struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Script    string    `json:"script" bson:"script"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewDocument creates a document with a fresh ID.
func NewDocument(title, script string) (*Document, error) {
	if err := errors.ValidateTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(script) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "script cannot be empty")
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &Document{
		ID:        uuid.NewString(),
		Title:     title,
		Script:    script,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FromDiagram creates a document holding the script of d.
func FromDiagram(d diagram.Diagram) (*Document, error) {
	return NewDocument(d.Name(), d.String())
}

// Graph returns the document as a raw diagram.
func (d *Document) Graph() *diagram.Graph {
	return diagram.NewGraph(d.Title, d.Script)
}

// Store is the interface for document storage backends.
type Store interface {
	// Put inserts or replaces a document and refreshes its UpdatedAt.
	Put(ctx context.Context, doc *Document) error

	// Get returns the document with the given ID.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns all documents, most recently updated first.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes the document with the given ID.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// validateID rejects IDs that are not UUIDs. File names and Mongo keys are
// derived from IDs, so nothing else is accepted.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid document id %q", id)
	}
	return nil
}

func prepare(doc *Document) error {
	if doc == nil {
		return errors.New(errors.ErrCodeInvalidInput, "document is nil")
	}
	if err := validateID(doc.ID); err != nil {
		return err
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "document %s not found", id)
}

func sortByUpdated(docs []*Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
}

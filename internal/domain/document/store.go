package document

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotConfigured is returned when no document store was set up at startup.
var ErrNotConfigured = errors.New("document store not configured")

// Store is the only way handlers and use cases reach the document database.
type Store interface {
	// CreateDocument inserts record into collection and returns the assigned
	// identifier as an opaque string.
	CreateDocument(ctx context.Context, collection string, record any) (string, error)

	// GetDocuments returns up to limit documents (0 means all) in store
	// order. A missing collection yields an empty slice.
	GetDocuments(ctx context.Context, collection string, limit int64) ([]bson.Raw, error)

	CountDocuments(ctx context.Context, collection string) (int64, error)

	CollectionNames(ctx context.Context) ([]string, error)

	Name() string
}

// GetDocuments fetches and decodes documents into T.
func GetDocuments[T any](ctx context.Context, s Store, collection string, limit int64) ([]T, error) {
	if s == nil {
		return nil, ErrNotConfigured
	}

	raws, err := s.GetDocuments(ctx, collection, limit)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := bson.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// GetFirst returns the first document of collection, or ok=false when it
// is empty.
func GetFirst[T any](ctx context.Context, s Store, collection string) (doc T, ok bool, err error) {
	docs, err := GetDocuments[T](ctx, s, collection, 1)
	if err != nil || len(docs) == 0 {
		return doc, false, err
	}
	return docs[0], true, nil
}

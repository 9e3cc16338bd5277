package repository

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentMemoryRepository keeps documents in process, encoded as BSON so
// that reads decode exactly as they would from MongoDB.
type DocumentMemoryRepository struct {
	name string

	mu          sync.RWMutex
	collections map[string][]bson.Raw
	order       []string
}

func NewDocumentMemoryRepository(name string) *DocumentMemoryRepository {
	return &DocumentMemoryRepository{
		name:        name,
		collections: make(map[string][]bson.Raw),
	}
}

func (r *DocumentMemoryRepository) Name() string {
	return r.name
}

func (r *DocumentMemoryRepository) CreateDocument(
	ctx context.Context,
	collection string,
	record any,
) (string, error) {

	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, id, err := withID(record)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[collection]; !ok {
		r.order = append(r.order, collection)
	}
	r.collections[collection] = append(r.collections[collection], raw)

	return id, nil
}

func (r *DocumentMemoryRepository) GetDocuments(
	ctx context.Context,
	collection string,
	limit int64,
) ([]bson.Raw, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := r.collections[collection]
	if limit > 0 && int64(len(docs)) > limit {
		docs = docs[:limit]
	}

	out := make([]bson.Raw, len(docs))
	copy(out, docs)
	return out, nil
}

func (r *DocumentMemoryRepository) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.collections[collection])), nil
}

func (r *DocumentMemoryRepository) CollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...), nil
}

// withID encodes record and assigns an ObjectID when it carries no _id.
func withID(record any) (bson.Raw, string, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, "", err
	}

	if v, err := bson.Raw(raw).LookupErr("_id"); err == nil {
		var id any
		if err := v.Unmarshal(&id); err != nil {
			return nil, "", err
		}
		return raw, idString(id), nil
	}

	elems, err := bson.Raw(raw).Elements()
	if err != nil {
		return nil, "", err
	}

	oid := primitive.NewObjectID()
	doc := make(bson.D, 0, len(elems)+1)
	doc = append(doc, bson.E{Key: "_id", Value: oid})
	for _, e := range elems {
		doc = append(doc, bson.E{Key: e.Key(), Value: e.Value()})
	}

	raw, err = bson.Marshal(doc)
	if err != nil {
		return nil, "", err
	}
	return raw, oid.Hex(), nil
}

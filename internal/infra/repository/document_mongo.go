package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentMongoRepository struct {
	db *mongo.Database
}

func NewDocumentMongoRepository(db *mongo.Database) *DocumentMongoRepository {
	return &DocumentMongoRepository{db: db}
}

func (r *DocumentMongoRepository) Name() string {
	return r.db.Name()
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *DocumentMongoRepository) CreateDocument(
	ctx context.Context,
	collection string,
	record any,
) (string, error) {

	res, err := r.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return idString(res.InsertedID), nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *DocumentMongoRepository) GetDocuments(
	ctx context.Context,
	collection string,
	limit int64,
) ([]bson.Raw, error) {

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := make([]bson.Raw, 0)
	for cur.Next(ctx) {
		// cur.Current is reused by the next batch
		docs = append(docs, append(bson.Raw(nil), cur.Current...))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return docs, nil
}

func (r *DocumentMongoRepository) CountDocuments(
	ctx context.Context,
	collection string,
) (int64, error) {

	n, err := r.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (r *DocumentMongoRepository) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// Field is one key of a stored document.
type Field struct {
	Key   string
	Value any
}

// Document is a stored document as clients see it: every field the store
// holds, in stored order, with _id rendered as a string.
type Document []Field

// Get returns the value stored under key.
func (d Document) Get(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FromRaw converts a stored BSON document without assuming its shape.
func FromRaw(raw bson.Raw) (Document, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, err
	}

	doc := make(Document, 0, len(elems))
	for _, e := range elems {
		rv := e.Value()
		if e.Key() == "_id" {
			var id models.DocID
			if err := id.UnmarshalBSONValue(rv.Type, rv.Value); err != nil {
				return nil, err
			}
			doc = append(doc, Field{Key: "_id", Value: id.String()})
			continue
		}

		v, err := plainValue(rv)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.Key(), err)
		}
		doc = append(doc, Field{Key: e.Key(), Value: v})
	}
	return doc, nil
}

func plainValue(rv bson.RawValue) (any, error) {
	switch rv.Type {
	case bson.TypeEmbeddedDocument:
		return FromRaw(rv.Document())
	case bson.TypeArray:
		vals, err := rv.Array().Values()
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(vals))
		for _, item := range vals {
			v, err := plainValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case bson.TypeString:
		return rv.StringValue(), nil
	case bson.TypeBoolean:
		return rv.Boolean(), nil
	case bson.TypeInt32:
		return rv.Int32(), nil
	case bson.TypeInt64:
		return rv.Int64(), nil
	case bson.TypeDouble:
		return rv.Double(), nil
	case bson.TypeObjectID:
		return rv.ObjectID().Hex(), nil
	case bson.TypeDateTime:
		return rv.Time().UTC(), nil
	case bson.TypeDecimal128:
		return rv.Decimal128().String(), nil
	case bson.TypeNull, bson.TypeUndefined:
		return nil, nil
	default:
		if err := rv.Validate(); err != nil {
			return nil, err
		}
		return rv.String(), nil
	}
}

// ListDocuments reads up to limit documents of collection as they are stored.
func ListDocuments(ctx context.Context, s Store, collection string, limit int64) ([]Document, error) {
	if s == nil {
		return nil, ErrNotConfigured
	}

	raws, err := s.GetDocuments(ctx, collection, limit)
	if err != nil {
		return nil, err
	}

	out := make([]Document, 0, len(raws))
	for _, raw := range raws {
		doc, err := FromRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("read %s document: %w", collection, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// FirstDocument returns the first stored document of collection, or
// ok=false when it is empty.
func FirstDocument(ctx context.Context, s Store, collection string) (doc Document, ok bool, err error) {
	docs, err := ListDocuments(ctx, s, collection, 1)
	if err != nil || len(docs) == 0 {
		return nil, false, err
	}
	return docs[0], true, nil
}

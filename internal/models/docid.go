package models

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DocID is a store-assigned identifier, carried and rendered as an opaque
// string whatever its native BSON type.
type DocID string

func (id *DocID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeObjectID:
		*id = DocID(rv.ObjectID().Hex())
	case bson.TypeString:
		*id = DocID(rv.StringValue())
	case bson.TypeInt32:
		*id = DocID(strconv.FormatInt(int64(rv.Int32()), 10))
	case bson.TypeInt64:
		*id = DocID(strconv.FormatInt(rv.Int64(), 10))
	case bson.TypeNull, bson.TypeUndefined:
		*id = ""
	default:
		if err := rv.Validate(); err != nil {
			return fmt.Errorf("decode _id: %w", err)
		}
		*id = DocID(rv.String())
	}
	return nil
}

func (id DocID) String() string {
	return string(id)
}

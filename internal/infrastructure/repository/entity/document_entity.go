package entity

import (
	"inventify-hub/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
)

// NewMongoDocument builds the insertable form of a client document. Fields
// are copied as sent; a client-supplied _id is dropped so MongoDB assigns an
// ObjectID the id routes can address.
func NewMongoDocument(fields map[string]interface{}) bson.M {
	doc := make(bson.M, len(fields))
	for key, value := range fields {
		if key == domain.FieldID {
			continue
		}
		doc[key] = value
	}
	return doc
}

// ProductUpdateSet builds the $set document for a product update. Every
// mutable field is written, nil ones as null.
func ProductUpdateSet(update domain.ProductUpdate) bson.M {
	set := make(bson.M, len(domain.ProductUpdateFields))
	for _, field := range domain.ProductUpdateFields {
		set[field] = update[field]
	}
	return set
}

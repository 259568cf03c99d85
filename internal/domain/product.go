package domain

// ProductUpdateFields are the keys a product update overwrites
var ProductUpdateFields = []string{
	"name",
	"quantity",
	"cost",
	"details",
	"image",
	"location",
	"discount",
	"profit",
	"price",
}

// Product is an inventory item document owned by a user through email
type Product Document

// Email returns the owner's email
func (p Product) Email() string {
	return Document(p).String(FieldEmail)
}

// ProductUpdate is the set of mutable product fields with the values the
// client sent. Every field in ProductUpdateFields is present; a field the
// client omitted is nil and clears the stored value.
type ProductUpdate map[string]interface{}

// NewProductUpdate picks the mutable fields out of body. Other keys are ignored.
func NewProductUpdate(body map[string]interface{}) ProductUpdate {
	update := make(ProductUpdate, len(ProductUpdateFields))
	for _, field := range ProductUpdateFields {
		update[field] = body[field]
	}
	return update
}

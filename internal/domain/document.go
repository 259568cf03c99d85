package domain

// Document is a stored record as the client sent it. The server interprets
// only a handful of keys and carries every other field through untouched.
type Document map[string]interface{}

// Fields of a stored record
const (
	FieldID    = "_id"
	FieldEmail = "email"
)

// String returns the value at key, or "" when absent or not a string
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

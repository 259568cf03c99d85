package domain

// InsertResult mirrors the document store's insert acknowledgement.
// InsertedID is nil when nothing was inserted.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

// UpdateResult mirrors the document store's update acknowledgement
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult mirrors the document store's delete acknowledgement
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UserExistsMessage is returned instead of an insert when the email is taken
const UserExistsMessage = "user already exists"

// NewInsertResult builds an acknowledged insert result for id
func NewInsertResult(id string) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: &id}
}

// UserExistsResult is the no-insert sentinel for duplicate registrations
func UserExistsResult() *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: nil, Message: UserExistsMessage}
}

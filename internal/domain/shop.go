package domain

// FieldOwnerEmail links a shop to the user who owns it
const FieldOwnerEmail = "ownerEmail"

// Shop is a storefront document owned by a user through ownerEmail
type Shop Document

// OwnerEmail returns the owner's email
func (s Shop) OwnerEmail() string {
	return Document(s).String(FieldOwnerEmail)
}

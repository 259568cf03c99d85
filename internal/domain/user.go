package domain

// RoleAdmin is the only elevated role a user record can hold
const RoleAdmin = "admin"

// FieldRole holds the user's role; absent for regular users
const FieldRole = "role"

// User is a registered user's document. Email is its unique key and role is
// the only other field the server reads.
type User Document

// Email returns the user's email
func (u User) Email() string {
	return Document(u).String(FieldEmail)
}

// Role returns the user's role, "" for regular users
func (u User) Role() string {
	return Document(u).String(FieldRole)
}

// IsAdmin reports whether the user holds the admin role. A nil user is not an admin.
func (u User) IsAdmin() bool {
	return u.Role() == RoleAdmin
}

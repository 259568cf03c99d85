package domain

import "context"

// Claim is the identity payload signed into a token. Only "email" is
// interpreted by the server; other fields pass through untouched.
type Claim map[string]interface{}

// Email returns the claim's email or "" when absent or not a string
func (c Claim) Email() string {
	return Document(c).String(FieldEmail)
}

type claimContextKey struct{}

// WithClaim attaches a verified claim to the context
func WithClaim(ctx context.Context, claim Claim) context.Context {
	return context.WithValue(ctx, claimContextKey{}, claim)
}

// GetClaimFromContext returns the verified claim, or nil if the request
// did not pass through token verification
func GetClaimFromContext(ctx context.Context) Claim {
	claim, _ := ctx.Value(claimContextKey{}).(Claim)
	return claim
}

package service

import "context"

// Identity is the verified subject of a customer ID token.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// IdentityVerifier verifies customer ID tokens issued by the identity provider.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}

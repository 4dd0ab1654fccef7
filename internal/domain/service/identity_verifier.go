package service

import "context"

// OperatorIdentity is a verified third-party identity presented at sign-in.
type OperatorIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

// IdentityVerifier verifies ID tokens from an external identity provider.
type IdentityVerifier interface {
	// VerifyIDToken checks the token signature, audience and issuer.
	VerifyIDToken(ctx context.Context, idToken string) (*OperatorIdentity, error)
}

package domain

import "time"

// TokenIssuer issues tokens (e.g. JWT) for an authenticated requester.
type TokenIssuer interface {
	Issue(requesterID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated requester.
type TokenVerifier interface {
	Verify(token string) (requesterID string, err error)
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "venuebooking/internal/delivery/http/helpers"
	"venuebooking/internal/domain"
)

type contextKey string

const requesterIDKey contextKey = "requesterID"

// SetRequesterID returns a context carrying the authenticated requester.
func SetRequesterID(ctx context.Context, requesterID string) context.Context {
	return context.WithValue(ctx, requesterIDKey, requesterID)
}

// RequesterIDFromContext returns the authenticated requester ID, if present.
func RequesterIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requesterIDKey).(string)
	return id, ok && id != ""
}

// RequireAuth returns a wrapper that validates the Bearer token and stores the requester ID
// in the request context. A missing or invalid token is answered with 401 and next is not called.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r)
			if msg != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, msg)
				return
			}
			requesterID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetRequesterID(r.Context(), requesterID)))
		}
	}
}

func bearerToken(r *http.Request) (token, problem string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/officeflow/officeflow-backend-go/internal/domain/auth"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
)

type sessionCtxKey struct{}

// SessionResolver builds the acting session for an identity email
// against the current employees snapshot.
type SessionResolver interface {
	Resolve(email string) session.Session
}

// ResolveSession attaches the acting session to the request context.
// The session is re-resolved on every request so a freshly loaded
// employee record takes effect without a new login.
func ResolveSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			email, ok := claims["email"].(string)
			if !ok || email == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			sess := resolver.Resolve(email)
			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session attached by ResolveSession.
func SessionFrom(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(session.Session)
	return sess, ok
}

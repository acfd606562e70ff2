package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/beesweeper-server/internal/auth"
)

type CtxKey int

const (
	CtxGameClaims CtxKey = iota
	CtxTokenError
)

// BearerToken extracts a token from the Authorization header or, for clients
// that cannot set headers such as browser websockets, the token query
// parameter.
func BearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		token, ok := strings.CutPrefix(h, "Bearer ")
		if ok {
			return strings.TrimSpace(token)
		}
	}
	return r.URL.Query().Get("token")
}

// Auth stores valid game claims in the request context. Requests without a
// valid token pass through unauthenticated; a rejected token leaves its parse
// error in the context instead.
func Auth(log *logrus.Logger, issuer *auth.Issuer) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := issuer.Parse(token)
			if err != nil {
				log.WithError(err).Debug("rejected game token")
				ctx := context.WithValue(r.Context(), CtxTokenError, err)
				h.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			ctx := context.WithValue(r.Context(), CtxGameClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GameClaims(ctx context.Context) (*auth.GameClaims, bool) {
	claims, ok := ctx.Value(CtxGameClaims).(*auth.GameClaims)
	return claims, ok
}

// TokenError returns why the request's token was rejected, or nil if it
// carried none or a valid one.
func TokenError(ctx context.Context) error {
	err, _ := ctx.Value(CtxTokenError).(error)
	return err
}

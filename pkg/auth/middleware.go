package auth

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/pkg/utils"
	"go.uber.org/zap"
)

type ContextKey string

const SessionKey ContextKey = "session"

// CookieName carries the session token for browser clients.
const CookieName = "straw_coin_session"

type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	HasPrivilegedAccess(username string) bool
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// SessionMiddleware rejects requests without a live session and stores the
// session in the request context.
func SessionMiddleware(sessions SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, string(domain.CodeSessionExpired), "Authentication required")
				return
			}

			session, err := sessions.Authenticate(r.Context(), token)
			if errors.Is(err, domain.ErrSessionExpired) {
				utils.RespondWithError(w, http.StatusUnauthorized, string(domain.CodeSessionExpired), "Authentication required")
				return
			}
			if err != nil {
				zap.L().Error("session check failed", zap.Error(err))
				utils.RespondWithDomainError(w, domain.OperationFailed(err))
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePrivileged must be mounted after SessionMiddleware.
func RequirePrivileged(sessions SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok || !sessions.HasPrivilegedAccess(session.Username) {
				utils.RespondWithError(w, http.StatusForbidden, string(domain.CodeForbidden), "Unauthorized - privileged access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*domain.Session)
	return session, ok && session != nil
}

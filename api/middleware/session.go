package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/internal/sessions"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/session"
	"github.com/google/uuid"
)

type sessionAcquirer interface {
	Acquire(id uuid.UUID) *sessions.Session
}

// Session resolves the guest session for every request. A missing, expired or
// tampered token is replaced by a freshly minted one, which starts an empty
// cart. The active token is always echoed in the response header.
func Session(cfg config.SessionConfig, registry sessionAcquirer, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := tokenFromRequest(r, cfg.CookieName)
			var sessionID uuid.UUID
			if token != "" {
				if claims, err := session.Parse(cfg, token); err == nil {
					sessionID = claims.SessionID
				} else if logg != nil {
					logg.Debug(logg.WithField(ctx, "reason", err.Error()), "session.token_rejected")
				}
			}

			if sessionID == uuid.Nil {
				sessionID = uuid.New()
				minted, err := session.Mint(cfg, time.Now().UTC(), sessionID)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue session"))
					return
				}
				token = minted
				if cfg.CookieName != "" {
					http.SetCookie(w, &http.Cookie{
						Name:     cfg.CookieName,
						Value:    token,
						Path:     "/",
						MaxAge:   int(cfg.TokenTTL.Seconds()),
						HttpOnly: true,
						Secure:   cfg.CookieSecure,
						SameSite: http.SameSiteLaxMode,
					})
				}
				if logg != nil {
					logg.Info(logg.WithSessionID(ctx, sessionID.String()), "session.issued")
				}
			}

			w.Header().Set(session.HeaderName, token)
			registry.Acquire(sessionID)

			ctx = WithSessionID(ctx, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if raw := strings.TrimSpace(r.Header.Get(session.HeaderName)); raw != "" {
		if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			raw = strings.TrimSpace(raw[7:])
		}
		return raw
	}
	if cookieName == "" {
		return ""
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

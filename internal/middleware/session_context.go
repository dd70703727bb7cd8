package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"pet-health-tracker/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

type CookieOptions struct {
	Name   string
	Secure bool
	// MaxAge del cookie; normalmente igual al TTL de sesión (0 = cookie de sesión del navegador).
	MaxAge time.Duration
}

// SessionContext:
// - Lee el cookie de sesión; si la sesión existe la renueva.
// - Si no hay cookie o la sesión expiró, crea una nueva y setea el cookie.
// - Deja la sesión en el context para handlers (GetSession).
func SessionContext(mgr *session.Manager, opts CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(opts.Name); err == nil {
				id = c.Value
			}

			s, created, err := mgr.GetOrCreate(r.Context(), id)
			if err != nil {
				hlog.FromRequest(r).Error().Stack().Err(err).Msg("session unavailable")
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}

			if created || opts.MaxAge > 0 {
				// Con MaxAge se reenvía en cada request para que el navegador acompañe el TTL deslizante.
				http.SetCookie(w, sessionCookie(opts, s.ID))
			}

			ctx := context.WithValue(r.Context(), sessionKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (*session.Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

func sessionCookie(opts CookieOptions, id string) *http.Cookie {
	c := &http.Cookie{
		Name:     opts.Name,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if opts.MaxAge > 0 {
		c.MaxAge = int(opts.MaxAge / time.Second)
	}
	return c
}

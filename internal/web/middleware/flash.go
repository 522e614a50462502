package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/imposter/internal/web/templates/layout"
)

type contextKey string

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")

	FlashError   = "error"
	FlashSuccess = "success"
	FlashInfo    = "info"
)

// GetFlash retrieves the flash message from the request context
// Returns nil if no flash message is set
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash sets a flash message to be displayed on the next request
func SetFlash(w http.ResponseWriter, flashType, message string) {
	// Query-escaped so messages survive cookie value sanitizing
	value := url.QueryEscape(flashType + ":" + message)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash messages
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *layout.FlashMessage {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		decoded = value
	}

	flashType, message, ok := strings.Cut(decoded, ":")
	if !ok {
		return &layout.FlashMessage{Type: FlashInfo, Message: decoded}
	}
	return &layout.FlashMessage{Type: flashType, Message: message}
}

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/imposter/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface.
// The player sees a page offering a fresh round instead of a stack trace.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Imposter | Error</title></head>
<body>
<h1>Something went wrong</h1>
<p>The round could not be shown.</p>
<form method="post" action="/reset"><button type="submit">Start over</button></form>
</body>
</html>`))
}

package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

const htmlContentType = "text/html; charset=utf-8"

// Fallback serves the HTML not-found page for any route without a handler.
type Fallback struct {
	user *User
}

// NewFallback creates a Fallback that counts visits through user's counter.
func NewFallback(user *User) *Fallback {
	return &Fallback{user: user}
}

func (f *Fallback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.user.countVisit(r)

	setFixedHeaders(w.Header(), htmlContentType)
	w.WriteHeader(http.StatusNotFound)
	if err := notFoundPage(r.URL.Path).Render(r.Context(), w); err != nil {
		f.user.logger.Error("Fallback handler: failed to render page", "error", err)
	}
}

func notFoundPage(path string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>404 Not Found</title></head>
<body>
<h1>404: Not Found</h1>
<p>The requested resource could not be found.</p>
<p><code>`+templ.EscapeString(path)+`</code></p>
</body>
</html>
`)
		return err
	})
}

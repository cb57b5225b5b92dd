package views

//go:generate templ generate

import (
	"bytes"
	"net/http"

	"github.com/2beens/fitstreak/pkg"

	"github.com/a-h/templ"
	log "github.com/sirupsen/logrus"
)

// Render buffers the component so a failing render never leaves a half written page behind.
func Render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		log.Errorf("render view [%s]: %s", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.HTML, buf.Bytes(), status)
}

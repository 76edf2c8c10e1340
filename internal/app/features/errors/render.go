// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/strataadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	nav "github.com/dalemusser/waffle/toolkit/ui/nav"
	"go.uber.org/zap"
)

// RenderServerError logs err and shows a friendly 500 page with msg.
// If backURL is empty, it resolves a safe back URL with /dashboard as fallback.
func RenderServerError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, msg, backURL string, err error) {
	if logger != nil {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	if backURL == "" {
		backURL = nav.ResolveBackURL(r, "/dashboard")
	}
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong"),
		Message: msg,
		BackURL: backURL,
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", data)
}

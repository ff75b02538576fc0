package handler

import (
	"io/fs"
	"net/http"

	"go.uber.org/zap"
)

const PublicAssets = "GET /public/"

// Pages maps each page route to its view file.
var Pages = map[string]string{
	"GET /{$}":            "home.html",
	"GET /create-account": "register.html",
	"GET /confirm":        "confirm.html",
	"GET /PlayTheGame":    "PlayTheGame.html",
	"GET /follow-us":      "follow.html",
	"GET /about":          "about.html",
	"GET /screenshots":    "Screenshots.html",
}

type PageHandler struct {
	logs  *zap.SugaredLogger
	views fs.FS
}

func NewPageHandler(logger *zap.SugaredLogger, views fs.FS) *PageHandler {
	return &PageHandler{
		logs:  logger,
		views: views,
	}
}

// Page serves a single view file.
func (h *PageHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := fs.Stat(h.views, name); err != nil {
			h.logs.Errorw("view not found",
				"error", err,
				"view", name,
				"request_id", requestID(r))
			http.NotFound(w, r)
			return
		}
		http.ServeFileFS(w, r, h.views, name)
	}
}

// Assets serves the public directory under /public/.
func (h *PageHandler) Assets(public fs.FS) http.Handler {
	return http.StripPrefix("/public/", http.FileServerFS(public))
}

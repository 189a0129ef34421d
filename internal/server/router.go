package server

import (
	"context"
	"net/http"

	"opina/internal/handlers"
	applog "opina/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/widget/submit", handlers.SubmitTestimonial)
	mux.HandleFunc("/widget/rate", handlers.SelectStar)
	mux.HandleFunc("/widget/cancel", handlers.CancelTestimonial)
	mux.HandleFunc("/preferences/theme", handlers.ToggleTheme)
	mux.HandleFunc("/preferences/language", handlers.ToggleLanguage)
	mux.HandleFunc("/", handlers.Widget)
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))
	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/jpamatch/matchboard/config"
	"github.com/jpamatch/matchboard/handlers"
	"github.com/jpamatch/matchboard/mail"
	"github.com/jpamatch/matchboard/middleware"
)

// NewRouter wires all routes and wraps the mux in the CORS middleware, which
// also answers OPTIONS preflight on every path.
func NewRouter(db *sql.DB, cfg config.Config, mailer mail.Sender) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	postHandler := handlers.NewPostHandler(db, cfg)
	contactHandler := handlers.NewContactHandler(db, cfg, mailer)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Posts
	mux.HandleFunc("GET /api/posts", middleware.WithLogging(postHandler.ListPosts))
	mux.HandleFunc("POST /api/posts", middleware.WithLogging(postHandler.CreatePost))
	mux.HandleFunc("GET /api/posts/{id}", middleware.WithLogging(postHandler.GetPost))
	mux.HandleFunc("DELETE /api/posts/{id}", middleware.WithLogging(postHandler.DeletePost))

	// Contact relay
	mux.HandleFunc("POST /api/contact", middleware.WithLogging(contactHandler.RelayContact))
	mux.HandleFunc("POST /api/test-email", middleware.WithLogging(contactHandler.SendTestEmail))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("JPAMatch board API v1"))
	})

	return middleware.CORS(mux)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/guildhall/cliparse"
	"github.com/danielhkuo/guildhall/handlers"
	"github.com/danielhkuo/guildhall/middleware"
	"github.com/danielhkuo/guildhall/models"
)

func NewRouter(dispatcher *handlers.Dispatcher, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Webhook deliveries from the platform
	mux.HandleFunc("POST /interactions",
		middleware.WithLogging(middleware.WithSignature(cfg.WebhookSecret, func(w http.ResponseWriter, r *http.Request) {
			var env models.Envelope
			if err := middleware.ParseJSONBody(r, &env); err != nil {
				middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
				return
			}
			if env.ID == "" || env.Kind == "" {
				middleware.ErrorResponse(w, http.StatusBadRequest, "id and kind are required")
				return
			}

			dispatcher.Route(r.Context(), env)

			// Routing never propagates handler failures; the delivery is
			// acknowledged once dispatched.
			middleware.JSONResponse(w, http.StatusAccepted, map[string]string{"status": "accepted"})
		})))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("guildhall webhook v1"))
	})

	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Signature Verification

Webhook deliveries carry an HMAC-SHA256 of the raw body in X-Signature.
WithSignature verifies it before the handler runs and re-buffers the body
so the handler can still parse it:

	mux.HandleFunc("POST /interactions",
		middleware.WithLogging(middleware.WithSignature(cfg.WebhookSecret, handler)))

A bad or missing signature is rejected with 401 before any parsing.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var env models.Envelope
	if err := middleware.ParseJSONBody(r, &env); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware

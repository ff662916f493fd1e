// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP surface of the assistant.

# Route Registration

NewRouter creates a configured http.ServeMux:

	mux := router.NewRouter(dispatcher, cfg)

# Endpoints

Health:

	GET /health

Webhook deliveries (signed with the shared secret, see middleware):

	POST /interactions

The delivery body is one models.Envelope. After signature verification and
decoding, the envelope is handed to the dispatcher synchronously; the
delivery is acknowledged with 202 regardless of handler outcome, since the
dispatcher converts handler failures into user-facing replies rather than
HTTP errors.
*/
package router

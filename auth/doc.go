// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides webhook authentication and ID generation utilities.

# Webhook Signatures

The platform signs every interaction delivery with HMAC-SHA256 over the
raw request body, hex encoded in the X-Signature header:

	err := auth.VerifySignature(body, r.Header.Get("X-Signature"), cfg.WebhookSecret)

Verification is constant-time. SignPayload is exposed for tests and for
the platform fake.

# ID Generation

Random hex IDs for audit entries and database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth

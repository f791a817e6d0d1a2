// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers.

  - WithLogging: request start/completion logging via slog
  - CORS: permissive cross-origin headers; OPTIONS on any path returns 200
  - JSONResponse / ErrorResponse: JSON writing helpers
  - ParseJSONBody: request body decoding
  - GetClientIP: client address extraction behind proxies

The board is consumed by a static frontend served from a different origin, so
CORS wraps the whole router rather than individual routes.
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all HTTP routes using Go 1.22+ method patterns.

NewRouter returns an http.Handler rather than the bare mux because the CORS
middleware wraps every route; an OPTIONS request on any path gets a 200 with
permissive headers before routing happens.
*/
package router

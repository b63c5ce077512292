// Package sportsapi is the HTTP client for the sports data service.
//
// The dashboard core only depends on "a function returning a result or an
// error"; this package provides those functions on top of a small JSON API:
//
//	GET /standings            {"standings": [Standing...]}
//	GET /schedule/2024-10-19  Schedule
//	GET /games/{id}           GameDetail
//	GET /teams/{abbrev}       Team
//	GET /players/{id}         Player
//
// # Retries
//
// Network failures, timeouts and 5xx/429 responses are retried with
// exponential backoff. 404 responses become ErrTypeNotFound and are never
// retried. The backoff sleep honours the request context.
//
// # Errors
//
// Every failure is an *APIError carrying an ErrorType. ShortMessage turns one
// into the text shown next to a failed section on screen:
//
//	standings, err := client.Standings(ctx)
//	if err != nil {
//	    status := sportsapi.ShortMessage(err) // "timeout", "not found", ...
//	}
//
// # Thread Safety
//
// A Client is safe for concurrent use; the standings cache is guarded by a
// RWMutex.
package sportsapi

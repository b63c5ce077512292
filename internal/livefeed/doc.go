// Package livefeed streams live score updates from the sports data service
// over a websocket.
//
// The service sends JSON envelopes:
//
//	{"type": "score", "score": {"gameId": 2024020001, "period": 2, "clock": "12:04", "awayScore": 1, "homeScore": 0}}
//	{"type": "heartbeat"}
//
// Feed.Run keeps one connection open, answers the service's liveness
// requirements with pings, and reconnects with exponential backoff when
// the connection drops. Updates and connection changes are reported to a
// Handler; the dashboard forwards both to its dispatch loop as actions.
package livefeed

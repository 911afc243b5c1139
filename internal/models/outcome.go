package models

// Lookup outcome constants
const (
	OutcomeRendered     = "rendered"
	OutcomeRejected     = "rejected"
	OutcomeNotFound     = "not_found"
	OutcomeFetchFailed  = "fetch_failed"
	OutcomeNetworkError = "network_error"
	OutcomeStale        = "stale"
)

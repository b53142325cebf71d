package models

import "time"

// Event kinds
const (
	EventKindLogin    = "login"
	EventKindCallback = "callback"
)

// Event outcomes
const (
	OutcomeRedirected          = "redirected"
	OutcomeTokenIssued         = "token_issued"
	OutcomeMissingState        = "missing_state"
	OutcomeInvalidState        = "invalid_state"
	OutcomeMissingCode         = "missing_code"
	OutcomeProviderError       = "provider_error"
	OutcomeExchangeFailed      = "exchange_failed"
	OutcomeProviderUnreachable = "provider_unreachable"
	OutcomeInternalError       = "internal_error"
)

// AuthEvent is an audit record for a single step of the login flow
type AuthEvent struct {
	ID        string
	Timestamp time.Time
	Kind      string
	Outcome   string
	Detail    string
	ClientIP  string
	UserAgent string
}

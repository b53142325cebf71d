package models

import "time"

// LoginState is the server-side record of an anti-replay token issued by /login
type LoginState struct {
	State     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

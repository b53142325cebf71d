package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	States StateRepository
	Audit  AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		States: NewStateRepository(db),
		Audit:  NewAuditRepository(db),
	}
}

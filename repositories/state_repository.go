package repositories

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/blogem/token-gate/models"
)

// ErrStateNotRedeemable is returned by Consume for unknown, expired or reused states
var ErrStateNotRedeemable = errors.New("state is unknown, expired or already used")

// StateRepository persists issued anti-replay tokens
type StateRepository interface {
	Save(state *models.LoginState) error
	Consume(state string, now time.Time) error
	DeleteExpired(now time.Time) (int64, error)
}

type sqliteStateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *sql.DB) StateRepository {
	return &sqliteStateRepository{db: db}
}

// hashState keeps raw state values out of the database
func hashState(state string) string {
	sum := sha256.Sum256([]byte(state))
	return hex.EncodeToString(sum[:])
}

// Save records a freshly issued state
func (r *sqliteStateRepository) Save(state *models.LoginState) error {
	query := `
		INSERT INTO login_states (state_hash, issued_at, expires_at)
		VALUES (?, ?, ?)
	`

	_, err := r.db.Exec(
		query,
		hashState(state.State),
		state.IssuedAt.UnixNano(),
		state.ExpiresAt.UnixNano(),
	)

	return err
}

// Consume marks the state as used. It succeeds at most once per state and
// only before the state expires.
func (r *sqliteStateRepository) Consume(state string, now time.Time) error {
	query := `
		UPDATE login_states
		SET consumed_at = ?
		WHERE state_hash = ? AND consumed_at IS NULL AND expires_at > ?
	`

	result, err := r.db.Exec(query, now.UnixNano(), hashState(state), now.UnixNano())
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return ErrStateNotRedeemable
	}

	return nil
}

// DeleteExpired removes states past their expiry, consumed or not
func (r *sqliteStateRepository) DeleteExpired(now time.Time) (int64, error) {
	result, err := r.db.Exec("DELETE FROM login_states WHERE expires_at <= ?", now.UnixNano())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

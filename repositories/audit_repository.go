package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/token-gate/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(event *models.AuthEvent) error
	ListRecent(limit int) ([]models.AuthEvent, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit event, filling in ID and Timestamp when unset
func (r *sqliteAuditRepository) Create(event *models.AuthEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	query := `
		INSERT INTO auth_events (id, timestamp, kind, outcome, detail, client_ip, user_agent)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(
		query,
		event.ID,
		event.Timestamp.UnixNano(),
		event.Kind,
		event.Outcome,
		event.Detail,
		event.ClientIP,
		event.UserAgent,
	)

	return err
}

// ListRecent returns the newest events first
func (r *sqliteAuditRepository) ListRecent(limit int) ([]models.AuthEvent, error) {
	query := `
		SELECT id, timestamp, kind, outcome, detail, client_ip, user_agent
		FROM auth_events
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.AuthEvent
	for rows.Next() {
		var event models.AuthEvent
		var ts int64
		if err := rows.Scan(&event.ID, &ts, &event.Kind, &event.Outcome, &event.Detail, &event.ClientIP, &event.UserAgent); err != nil {
			return nil, err
		}
		event.Timestamp = time.Unix(0, ts)
		events = append(events, event)
	}

	return events, rows.Err()
}

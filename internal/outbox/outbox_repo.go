// Package outbox implements the transactional outbox: events are
// written in the same transaction as the state change they announce and
// shipped to Kafka by a separate worker.
package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

// Event is one row of the outbox table.
type Event struct {
	ID        uuid.UUID
	EventType string
	Payload   json.RawMessage
	Status    string
	CreatedAt time.Time
	SentAt    sql.NullTime
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=outboxmock

type Repository interface {
	// WithTx returns a repository bound to tx so event inserts join the
	// caller's transaction.
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, eventType string, payload any) error
	ListPending(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type repository struct {
	db querier
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO outbox_events (id, event_type, payload, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		uuid.New(), eventType, body, StatusPending,
	)
	return err
}

func (r *repository) ListPending(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_type, payload, status, created_at, sent_at
		FROM outbox_events
		WHERE status = $1
		ORDER BY created_at
		LIMIT $2`,
		StatusPending, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.Payload, &e.Status, &e.CreatedAt, &e.SentAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox_events SET status = $1, sent_at = NOW() WHERE id = $2`,
		StatusSent, id,
	)
	return err
}

func (r *repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox_events SET status = $1 WHERE id = $2`,
		StatusFailed, id,
	)
	return err
}

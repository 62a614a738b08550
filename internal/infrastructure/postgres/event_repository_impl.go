package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planora/planora-api/internal/domain/entity"
	"github.com/planora/planora-api/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, user_id, event_name, venue, date_time, value, status, description, created_at, updated_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	e := &entity.Event{}
	if err := row.Scan(&e.ID, &e.UserID, &e.EventName, &e.Venue, &e.DateTime,
		&e.Value, &e.Status, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) Create(e *entity.Event) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (user_id, event_name, venue, date_time, value, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.EventName, e.Venue, e.DateTime, e.Value, e.Status, e.Description)

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepository) GetByID(id string) (*entity.Event, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id)
	return scanEvent(row)
}

func (r *EventRepository) ListByUser(userID string) ([]*entity.Event, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE user_id = $1
		ORDER BY date_time ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*entity.Event, 0)
	for rows.Next() {
		e := &entity.Event{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventName, &e.Venue, &e.DateTime,
			&e.Value, &e.Status, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Update(e *entity.Event) error {
	ctx := context.Background()
	e.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE events
		SET user_id = $1, event_name = $2, venue = $3, date_time = $4,
		    value = $5, status = $6, description = $7, updated_at = $8
		WHERE id = $9
	`, e.UserID, e.EventName, e.Venue, e.DateTime, e.Value, e.Status, e.Description, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *EventRepository) Delete(id string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByUser removes every event owned by userID. Zero rows is fine:
// the account-delete cascade runs for users without events too.
func (r *EventRepository) DeleteByUser(userID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM events WHERE user_id = $1`, userID)
	return err
}

var _ repository.EventRepository = (*EventRepository)(nil)

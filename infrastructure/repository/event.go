// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/realestate-seo-api/infrastructure/database/postgres"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

const (
	eventsTable = "analytics_events ae"
)

type EventRepository interface {
	ListByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.Event, error)
	Save(ctx context.Context, event *domain.Event) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type eventRepository struct {
	conn postgres.Conn
}

func NewEventRepository(conn postgres.Conn) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func listEventsQuery(startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("ae.id", "ae.event", "ae.timestamp", "ae.session_id", "ae.referrer", "ae.page_url").
		From(eventsTable).
		Where(squirrel.GtOrEq{"ae.timestamp": startDate}).
		Where(squirrel.LtOrEq{"ae.timestamp": endDate}).
		OrderBy("ae.timestamp ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *eventRepository) ListByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.Event, error) {
	query, args, err := listEventsQuery(startDate, endDate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func saveEventQuery(event *domain.Event) squirrel.InsertBuilder {
	return squirrel.
		Insert("analytics_events").
		Columns("event", "timestamp", "session_id", "referrer", "page_url").
		Values(event.Event, event.Timestamp, event.SessionID, nullableString(event.Referrer), nullableString(event.PageURL)).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *eventRepository) Save(ctx context.Context, event *domain.Event) error {
	query, args, err := saveEventQuery(event).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&event.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *eventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("analytics_events").
		Where(squirrel.Lt{"timestamp": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *eventRepository) scanEvent(rows *sql.Rows) (domain.Event, error) {
	in := domain.EventInput{}

	err := rows.Scan(
		&in.ID,
		&in.Event,
		&in.Timestamp,
		&in.SessionID,
		&in.Referrer,
		&in.PageURL,
	)
	if err != nil {
		return domain.Event{}, err
	}

	return in.Coerce(), nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

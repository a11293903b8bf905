package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) SaveChatEvent(ctx context.Context, e entity.ChatEvent) error {
	sqlQuery, args, err := sq.Insert("chat_events").
		Columns("id", "kind", "visitor_email", "payload", "received_at").
		Values(e.ID, e.Kind, e.VisitorEmail, string(e.Payload), e.ReceivedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("insert chat event: %w", err)
	}

	return nil
}

// ChatEvents returns events newest first.
func (r *Repository) ChatEvents(ctx context.Context, filter entity.ChatEventFilter) ([]entity.ChatEvent, error) {
	stmt := sq.Select("id", "kind", "visitor_email", "payload", "received_at").
		From("chat_events").
		OrderBy("received_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.VisitorEmail != "" {
		stmt = stmt.Where(sq.Eq{"visitor_email": filter.VisitorEmail})
	}

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("select chat events: %w", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ChatEvent, error) {
		var (
			e       entity.ChatEvent
			payload []byte
		)

		err := row.Scan(&e.ID, &e.Kind, &e.VisitorEmail, &payload, &e.ReceivedAt)
		e.Payload = payload

		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan chat events: %w", err)
	}

	return events, nil
}

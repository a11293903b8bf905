package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
	"github.com/samandr77/microservices/crmwidget/internal/repository"
	"github.com/samandr77/microservices/crmwidget/pkg/postgres"
)

func TestRepository_ChatEvents(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	email := uuid.Must(uuid.NewV4()).String() + "@example.com"
	now := time.Now().UTC().Truncate(time.Millisecond)

	older := entity.ChatEvent{
		ID:           uuid.Must(uuid.NewV4()),
		Kind:         entity.ChatEventStarted,
		VisitorEmail: email,
		Payload:      json.RawMessage(`{"visitor_info":{"email":"` + email + `"}}`),
		ReceivedAt:   now.Add(-time.Minute),
	}
	newer := entity.ChatEvent{
		ID:           uuid.Must(uuid.NewV4()),
		Kind:         entity.ChatEventEnded,
		VisitorEmail: email,
		Payload:      json.RawMessage(`{}`),
		ReceivedAt:   now,
	}

	require.NoError(t, repo.SaveChatEvent(ctx, older))
	require.NoError(t, repo.SaveChatEvent(ctx, newer))

	got, err := repo.ChatEvents(ctx, entity.ChatEventFilter{VisitorEmail: email, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, newer.ID, got[0].ID)
	require.Equal(t, older.ID, got[1].ID)
	require.JSONEq(t, string(older.Payload), string(got[1].Payload))
	require.True(t, older.ReceivedAt.Equal(got[1].ReceivedAt))

	got, err = repo.ChatEvents(ctx, entity.ChatEventFilter{VisitorEmail: email, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	require.NoError(t, postgres.UpMigrations(dsn))

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

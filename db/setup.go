package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/t-suguru/book-management/pkg/logger"
	"go.uber.org/zap"
)

// SetupPostgres makes sure the relations exist. Schema migrations are out of
// scope; this is a plain bootstrap for fresh databases.
func SetupPostgres(pool *pgxpool.Pool, log *zap.Logger) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS authors (
    id uuid PRIMARY KEY,
    name text NOT NULL,
    birthdate date NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS books (
    id uuid PRIMARY KEY,
    title text NOT NULL,
    price integer NOT NULL CHECK (price >= 0),
    status_id integer NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS authorships (
    book_id uuid NOT NULL REFERENCES books (id) ON DELETE CASCADE,
    author_id uuid NOT NULL REFERENCES authors (id),
    PRIMARY KEY (book_id, author_id)
)`,
		`DO $$ BEGIN
    CREATE TYPE outbox_status AS ENUM ('CREATED', 'IN_PROGRESS', 'SUCCESS', 'ABANDONED');
EXCEPTION
    WHEN duplicate_object THEN NULL;
END $$`,
		`CREATE TABLE IF NOT EXISTS outbox (
    idempotency_key text PRIMARY KEY,
    data bytea NOT NULL,
    status outbox_status NOT NULL,
    kind integer NOT NULL,
    attempts integer NOT NULL DEFAULT 0,
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now()
)`,
		`CREATE OR REPLACE FUNCTION touch_updated_at() RETURNS trigger AS $$
BEGIN
    NEW.updated_at = now();
    RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
		`DO $$ BEGIN
    CREATE TRIGGER outbox_touch_updated_at
        BEFORE UPDATE ON outbox
        FOR EACH ROW EXECUTE FUNCTION touch_updated_at();
EXCEPTION
    WHEN duplicate_object THEN NULL;
END $$`,
	}

	ctx := context.Background()
	for _, statement := range statements {
		_, err := pool.Exec(ctx, statement)
		logger.CheckError(err, log, "can not setup postgres schema", zap.Error(err))
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied idempotently at startup. The users.email unique index is
// the sole guard against concurrent duplicate registration; the
// expert_profiles.user_id unique constraint enforces one profile per user.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name     TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'inventor'
	              CHECK (role IN ('inventor', 'client', 'expert')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS expert_profiles (
	id          BIGSERIAL PRIMARY KEY,
	user_id     BIGINT NOT NULL UNIQUE REFERENCES users(id),
	title       TEXT NOT NULL DEFAULT '',
	bio         TEXT NOT NULL DEFAULT '',
	hourly_rate NUMERIC(10,2) NOT NULL DEFAULT 0,
	location    TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ip_listings (
	id          BIGSERIAL PRIMARY KEY,
	user_id     BIGINT NOT NULL REFERENCES users(id),
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL DEFAULT 0,
	category    TEXT NOT NULL DEFAULT '',
	ip_type     TEXT NOT NULL
	            CHECK (ip_type IN ('Patent', 'Trademark', 'Copyright')),
	status      TEXT NOT NULL DEFAULT 'active',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS service_requests (
	id          BIGSERIAL PRIMARY KEY,
	client_id   BIGINT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	budget      NUMERIC(12,2) NOT NULL DEFAULT 0,
	status      TEXT NOT NULL DEFAULT 'open',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS audit_events (
	id         BIGSERIAL PRIMARY KEY,
	actor_id   BIGINT NOT NULL,
	action     TEXT NOT NULL,
	entity     TEXT NOT NULL DEFAULT '',
	entity_id  BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate applies the schema. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

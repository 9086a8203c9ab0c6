package postgres

import "context"

// Схема приложения. Применяется командой `igctl migrate`.
const schema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
	id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	username      text NOT NULL,
	email         text NOT NULL UNIQUE,
	password      text NOT NULL,
	refresh_token text NOT NULL DEFAULT '',
	created_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS feeds (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	title      text,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS photos (
	id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	feed_id      uuid NOT NULL REFERENCES feeds(id) ON DELETE CASCADE,
	storage_path text NOT NULL,
	caption      text,
	tags         text[],
	order_index  integer NOT NULL DEFAULT 0,
	created_at   timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS photos_feed_order_idx
	ON photos (feed_id, order_index, created_at, id);

CREATE TABLE IF NOT EXISTS previews (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	feed_id    uuid NOT NULL REFERENCES feeds(id) ON DELETE CASCADE,
	token      text NOT NULL UNIQUE,
	expires_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT now()
);
`

func (s *Storage) Migrate(ctx context.Context) error {
	_, err := s.DB.Exec(ctx, schema)
	return err
}

package db

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              serial PRIMARY KEY,
	username        text NOT NULL,
	password_hash   text NOT NULL,
	first_name      text,
	last_name       text,
	graduation_year integer,
	gpa             double precision,
	team            text,
	school          text,
	club            text,
	height          text,
	weight_class    text,
	created_at      timestamptz NOT NULL DEFAULT now(),
	CONSTRAINT users_username_key UNIQUE (username)
);

CREATE TABLE IF NOT EXISTS colleges (
	id              serial PRIMARY KEY,
	name            text NOT NULL,
	logo_key        text,
	recruitment_url text
);

CREATE TABLE IF NOT EXISTS user_colleges (
	user_id    integer NOT NULL,
	college_id integer NOT NULL,
	PRIMARY KEY (user_id, college_id),
	CONSTRAINT user_colleges_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
	CONSTRAINT user_colleges_college_id_fkey FOREIGN KEY (college_id) REFERENCES colleges (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS matches (
	id          serial PRIMARY KEY,
	user_id     integer NOT NULL,
	opponent    text NOT NULL,
	date        date NOT NULL,
	description text,
	created_at  timestamptz NOT NULL DEFAULT now(),
	CONSTRAINT matches_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS events (
	id          serial PRIMARY KEY,
	name        text NOT NULL,
	date        date NOT NULL,
	description text NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contact_messages (
	id         serial PRIMARY KEY,
	email      text NOT NULL,
	message    text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);
`

// The two booster colleges the site launched with. Seeded only while the
// table is empty so admin edits are never overwritten.
const seedColleges = `
INSERT INTO colleges (name, logo_key, recruitment_url)
SELECT seed.name, seed.logo_key, seed.recruitment_url
FROM (VALUES
	('State University', 'colleges/state_university.svg', 'https://example.com/state-form'),
	('City College', 'colleges/city_college.svg', 'https://example.com/city-form')
) AS seed(name, logo_key, recruitment_url)
WHERE NOT EXISTS (SELECT 1 FROM colleges)
`

// Migrate creates the schema if needed and seeds the initial college list.
// All statements are idempotent, so running it on every boot is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, seedColleges); err != nil {
		return fmt.Errorf("failed to seed colleges: %w", err)
	}
	return nil
}

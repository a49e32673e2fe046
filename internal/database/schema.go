package database

import (
	"context"
	"fmt"
)

// heroes.team_id deliberately carries no REFERENCES clause: deleting a team
// leaves its heroes' team_id dangling rather than cascading or failing.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		headquarters TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_teams_name ON teams (name)`,
	`CREATE TABLE IF NOT EXISTS heroes (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		secret_name TEXT NOT NULL,
		age INT,
		team_id BIGINT,
		hashed_password TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_heroes_name ON heroes (name)`,
	`CREATE INDEX IF NOT EXISTS idx_heroes_age ON heroes (age)`,
	`CREATE INDEX IF NOT EXISTS idx_heroes_team_id ON heroes (team_id)`,
}

// EnsureSchema creates the teams and heroes tables and their indexes if
// they do not already exist. Called once at startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}
